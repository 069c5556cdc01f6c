package template

// Default is the built-in card template used when the caller supplies no
// markup. It exposes the standard placeholders (title, text, image, width,
// height) and declares its animations on [data-animate] elements so the
// video path's speed multipliers can find them.
const Default = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{title}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
        }

        body {
            width: {{width}}px;
            height: {{height}}px;
            background: linear-gradient(160deg, #1a1a2e 0%, #16213e 60%, #0f3460 100%);
            display: flex;
            flex-direction: column;
            align-items: center;
            justify-content: flex-start;
            padding: 40px 20px 0 20px;
            gap: 30px;
            position: relative;
            overflow: hidden;
        }

        .title-container {
            background-color: rgba(255, 255, 255, 0.92);
            padding: 20px 40px;
            border-radius: 24px;
            box-shadow: 0 8px 25px rgba(0, 0, 0, 0.25);
            text-align: center;
            max-width: 90%;
            z-index: 10;
        }

        .title-container h1 {
            font-size: 48px;
            color: #16213e;
            margin: 0;
            font-weight: 700;
        }

        .image-container {
            width: 80%;
            aspect-ratio: 1;
            background-color: rgba(255, 255, 255, 0.9);
            border-radius: 30px;
            display: flex;
            align-items: center;
            justify-content: center;
            box-shadow: 0 10px 30px rgba(0, 0, 0, 0.3);
            overflow: hidden;
            z-index: 10;
        }

        .image-container img {
            max-width: 95%;
            max-height: 95%;
            border-radius: 15px;
            object-fit: contain;
        }

        .caption-container {
            background-color: rgba(255, 255, 255, 0.9);
            padding: 25px 40px;
            border-radius: 24px;
            box-shadow: 0 8px 25px rgba(0, 0, 0, 0.25);
            text-align: center;
            max-width: 90%;
            z-index: 10;
        }

        .caption-container p {
            font-size: 36px;
            color: #0f3460;
            line-height: 1.4;
            margin: 0;
        }

        [data-animate="rotate"] {
            animation: spin 8s linear infinite;
        }

        [data-animate="scale"] {
            animation: pulse 4s ease-in-out infinite;
        }

        [data-animate="scroll"] {
            animation: drift 12s linear infinite;
        }

        @keyframes spin {
            from { transform: rotate(0deg); }
            to { transform: rotate(360deg); }
        }

        @keyframes pulse {
            0%, 100% { transform: scale(1); }
            50% { transform: scale(1.04); }
        }

        @keyframes drift {
            from { background-position: 0 0; }
            to { background-position: 0 -200px; }
        }
    </style>
</head>
<body data-animate="scroll">
    <div class="title-container" data-animate="scale">
        <h1>{{title}}</h1>
    </div>
    <div class="image-container">
        <img src="{{image}}" alt="{{title}}" data-animate="rotate">
    </div>
    <div class="caption-container">
        <p>{{text}}</p>
    </div>
</body>
</html>`
