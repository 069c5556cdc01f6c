package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Still capture
		"Capturing %dx%d surface for %dx%d frame": "%dx%dのキャプチャ面で%dx%dのフレームを撮影中",
		"Failed to save resolved HTML: %v":        "解決済みHTMLの保存に失敗しました: %v",
		"Failed to save raw capture: %v":          "未加工キャプチャの保存に失敗しました: %v",
		"Failed to save cropped frame: %v":        "切り抜きフレームの保存に失敗しました: %v",

		// Video capture
		"Browser launched":                               "ブラウザを起動しました",
		"Page loaded: %s":                                "ページを読み込みました: %s",
		"Recording for %s":                               "%s間記録中",
		"Recording context closed":                       "記録コンテキストを閉じました",
		"Post-load script did not apply: %s":             "ロード後スクリプトが適用されませんでした: %s",
		"Recording %dx%d for %s":                         "%dx%dを%s間記録中",
		"Session reported no path, using workspace scan: %s": "セッションがパスを報告しなかったためワークスペースを走査します: %s",

		// Transcode
		"Transcoded %s -> %s":                               "%sを%sにトランスコードしました",
		"Transcode failed, keeping original container: %s":  "トランスコードに失敗したため元のコンテナを保持します: %s",
		"Encoder not found, keeping original container: %s": "エンコーダが見つからないため元のコンテナを保持します: %s",
		"ffmpeg stderr: %s":                                 "ffmpeg標準エラー出力: %s",
		"Delivered MP4 failed probe: %v":                    "出力MP4の検査に失敗しました: %v",
		"Delivered MP4 has no video track: %s":              "出力MP4に映像トラックがありません: %s",
		"Delivered MP4: %dms %dx%d at %g fps":               "出力MP4: %dms %dx%d %gfps",

		// Relocation
		"Target directory unavailable, keeping workspace artifact: %v": "出力先ディレクトリが利用できないためワークスペースの成果物を保持します: %v",
		"Relocation failed, keeping workspace artifact: %v":            "移動に失敗したためワークスペースの成果物を保持します: %v",

		// Orchestration
		"Failed to create workspace: %v":        "ワークスペースの作成に失敗しました: %v",
		"Failed to prepare input image: %v":     "入力画像の準備に失敗しました: %v",
		"Frame capture failed: %v":              "フレームキャプチャに失敗しました: %v",
		"Frame relocation failed: %v":           "フレームの移動に失敗しました: %v",
		"Video relocation failed: %v":           "動画の移動に失敗しました: %v",
		"Video rendering failed: %v":            "動画のレンダリングに失敗しました: %v",
		"Failed to save recording metadata: %v": "記録メタデータの保存に失敗しました: %v",
		"Failed to remove workspace %s: %v":     "ワークスペース%sの削除に失敗しました: %v",
		"Malformed extension JSON ignored: %v":  "不正な拡張JSONを無視しました: %v",
	})
}
