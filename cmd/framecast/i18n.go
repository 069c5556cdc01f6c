// Package main provides localization for the framecast CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Render HTML templates into still images and short videos": "HTMLテンプレートを静止画と短い動画にレンダリング",

		// Subcommands
		"Render the template to a single PNG frame":    "テンプレートを1枚のPNGフレームとしてレンダリング",
		"Record the animated template as a video clip": "アニメーション付きテンプレートを動画クリップとして記録",

		// Global flags
		"Configuration file (YAML)":             "設定ファイル（YAML）",
		"Log level (debug, info, warn, error)":  "ログレベル（debug, info, warn, error）",
		"Suppress all log output":               "すべてのログ出力を抑制",

		// Render flags
		"Title substituted for {{title}}":                       "{{title}}に代入するタイトル",
		"Body text substituted for {{text}}":                    "{{text}}に代入する本文テキスト",
		"Template file (built-in card template when omitted)":   "テンプレートファイル（省略時は組み込みカードテンプレート）",
		"Input image file substituted for {{image}}":            "{{image}}に代入する入力画像ファイル",
		"Apply a circular mask to the input image":              "入力画像に円形マスクを適用",
		"Extension parameters as a JSON object":                 "拡張パラメータ（JSONオブジェクト）",
		"Output width in pixels":                                "出力幅（ピクセル）",
		"Output height in pixels":                               "出力高さ（ピクセル）",
		"Output directory":                                      "出力ディレクトリ",
		"Path to a Chromium based browser executable":           "Chromium系ブラウザ実行ファイルのパス",
		"Enable debug output":                                   "デバッグ出力を有効化",
		"Directory for debug output":                            "デバッグ出力のディレクトリ",

		// Still flags
		"Capture surface compensation rows": "キャプチャ面の補正行数",

		// Video flags
		"Recording duration in seconds":       "記録時間（秒）",
		"Output frame rate":                   "出力フレームレート",
		"Rotation animation speed multiplier": "回転アニメーションの速度倍率",
		"Scale animation speed multiplier":    "拡縮アニメーションの速度倍率",
		"Scroll animation speed multiplier":   "スクロールアニメーションの速度倍率",
		"Path to the ffmpeg executable":       "ffmpeg実行ファイルのパス",

		// Runtime messages
		"Interrupted, shutting down...":     "中断されました。シャットダウンします...",
		"Rendering %dx%d still frame...":    "%dx%dの静止画フレームをレンダリング中...",
		"Recording %gs clip at %g fps...":   "%g秒のクリップを%gfpsで記録中...",
		"Recorded %d frames":                "%dフレームを記録しました",
		"Output saved to %s":                "出力を%sに保存しました",
	})
}
