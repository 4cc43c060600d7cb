package server

const indexHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex;
      flex-direction: column;
      align-items: center;
      min-height: 100vh;
      padding: 1rem;
      transition: background-color 0.3s, color 0.3s;
    }

    /* Light mode (default) */
    body {
      background-color: #f8f9fa;
      color: #212529;
    }

    /* Dark mode */
    @media (prefers-color-scheme: dark) {
      body {
        background-color: #1a1a2e;
        color: #e0e0e0;
      }
      .lesson-list li { border-color: #444; }
      .glossary th, .glossary td { border-color: #444; }
      a { color: #7ab8e8; }
    }

    h1 {
      margin: 1rem 0 0.25rem;
      font-size: 1.4rem;
      font-weight: 600;
    }

    h2 {
      margin: 1.5rem 0 0.75rem;
      font-size: 1.15rem;
      font-weight: 600;
    }

    main {
      width: 100%;
      max-width: 920px;
    }

    .subtitle {
      color: #6c757d;
      margin-bottom: 1rem;
    }

    a { color: #2374ab; }

    .topnav {
      margin-bottom: 0.5rem;
      font-size: 0.9rem;
    }

    .lesson-list {
      list-style: none;
      counter-reset: lesson;
    }

    .lesson-list li {
      padding: 0.75rem 0.25rem;
      border-bottom: 1px solid #dee2e6;
    }

    .lesson-list li::before {
      counter-increment: lesson;
      content: counter(lesson) ". ";
      color: #6c757d;
    }

    .lesson-list a { font-weight: 600; }

    .lesson-list .summary {
      margin-top: 0.25rem;
      font-size: 0.9rem;
    }

    .term-tags {
      margin-top: 0.25rem;
      font-size: 0.85rem;
      color: #6c757d;
    }

    .glossary {
      border-collapse: collapse;
      width: 100%;
      font-size: 0.9rem;
    }

    .glossary th, .glossary td {
      border: 1px solid #dee2e6;
      padding: 0.5rem 0.6rem;
      text-align: left;
      vertical-align: top;
    }

    .diagram-viewport {
      width: 100%;
      overflow: auto;
      display: flex;
      justify-content: center;
      padding: 1rem 0;
    }

    /* Override Mermaid's small default font sizes in class diagrams */
    .mermaid svg { font-size: 18px !important; }
    .mermaid svg g.classGroup text { font-size: 18px !important; }
    .mermaid svg .classTitleText { font-size: 28px !important; }
    .mermaid svg .nodeLabel { font-size: 18px !important; }
    .mermaid svg .edgeLabel { font-size: 16px !important; }
    .mermaid svg .label text { font-size: 18px !important; }

    /* Color coding: interface blocks (blue) */
    .mermaid svg g.node.interfaceStyle > g:first-child > path:first-child {
      fill: #2374ab !important;
    }
    .mermaid svg g.node.interfaceStyle > g:first-child > path:nth-child(2) {
      stroke: #1a5a8a !important;
      stroke-width: 2px !important;
    }
    .mermaid svg g.node.interfaceStyle .nodeLabel {
      color: #fff !important;
    }

    /* Color coding: implementation blocks (green) */
    .mermaid svg g.node.implStyle > g:first-child > path:first-child {
      fill: #4a9c6d !important;
    }
    .mermaid svg g.node.implStyle > g:first-child > path:nth-child(2) {
      stroke: #357a50 !important;
      stroke-width: 2px !important;
    }
    .mermaid svg g.node.implStyle .nodeLabel {
      color: #fff !important;
    }
  </style>
</head>
<body>
  <main>
    <h1>{{.Title}}</h1>
    <p class="subtitle">The classroom words of object-oriented programming, each read in Go.</p>
    <nav class="topnav"><a href="/booklet.md">Download as Markdown booklet</a></nav>

    {{if .Overview}}
    <h2>Contracts at a glance</h2>
    <div class="diagram-viewport">
      <pre class="mermaid">{{.Overview}}</pre>
    </div>
    {{end}}

    <h2>Lessons</h2>
    <ol class="lesson-list">
      {{range .Lessons}}<li>
        <a href="/lesson/{{.Slug}}">{{.Title}}</a>
        {{if .Summary}}<div class="summary">{{.Summary}}</div>{{end}}
        {{if .Terms}}<div class="term-tags">{{.Terms}}</div>{{end}}
      </li>
      {{end}}
    </ol>

    <h2>Glossary</h2>
    <table class="glossary">
      <tr><th>Term</th><th>Definition</th></tr>
      {{range .Terms}}<tr><td>{{.Name}}</td><td>{{.Definition}}</td></tr>
      {{end}}
    </table>
  </main>

  <script src="https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.min.js"></script>
  <script>
    mermaid.initialize({
      startOnLoad: true,
      theme: 'base',
      themeVariables: {
        primaryColor: '#ffffff',
        primaryBorderColor: '#cccccc',
        primaryTextColor: '#000000',
        lineColor: '#555555',
        fontSize: '16px'
      }
    });
  </script>
</body>
</html>
`

const lessonHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} - {{.SiteTitle}}</title>
  <style>
    *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex;
      flex-direction: column;
      align-items: center;
      min-height: 100vh;
      padding: 1rem;
      transition: background-color 0.3s, color 0.3s;
    }

    /* Light mode (default) */
    body {
      background-color: #f8f9fa;
      color: #212529;
    }

    /* Dark mode */
    @media (prefers-color-scheme: dark) {
      body {
        background-color: #1a1a2e;
        color: #e0e0e0;
      }
      .controls button {
        background-color: #2d2d44;
        color: #e0e0e0;
        border-color: #444;
      }
      .controls button:hover {
        background-color: #3d3d5c;
      }
      pre.code { background-color: #2d2d44; }
      a { color: #7ab8e8; }
    }

    h1 {
      margin: 1rem 0 0.25rem;
      font-size: 1.4rem;
      font-weight: 600;
    }

    h2 {
      margin: 1.5rem 0 0.75rem;
      font-size: 1.15rem;
      font-weight: 600;
    }

    main {
      width: 100%;
      max-width: 920px;
    }

    a { color: #2374ab; }

    .topnav {
      display: flex;
      gap: 1rem;
      font-size: 0.9rem;
      margin-bottom: 0.5rem;
    }

    .term-tags {
      font-size: 0.85rem;
      color: #6c757d;
      margin-bottom: 1rem;
    }

    .prose {
      white-space: pre-wrap;
      line-height: 1.55;
      margin-bottom: 1rem;
    }

    .source-path {
      font-size: 0.85rem;
      color: #6c757d;
      margin-bottom: 0.25rem;
    }

    pre.code {
      background-color: #eef1f4;
      border-radius: 6px;
      padding: 0.75rem 1rem;
      overflow: auto;
      font-size: 0.85rem;
      line-height: 1.45;
      margin-bottom: 1rem;
    }

    .controls {
      display: flex;
      gap: 0.5rem;
      margin-bottom: 1rem;
      flex-wrap: wrap;
    }

    .controls button {
      padding: 0.4rem 0.9rem;
      font-size: 0.9rem;
      border: 1px solid #ccc;
      border-radius: 6px;
      background-color: #ffffff;
      color: #212529;
      cursor: pointer;
      transition: background-color 0.15s;
    }

    .controls button:hover {
      background-color: #e9ecef;
    }

    .diagram-viewport {
      width: 100%;
      overflow: auto;
      display: flex;
      justify-content: center;
      padding: 1rem 0;
    }

    .diagram-container {
      width: 100%;
      transform-origin: top center;
      transition: transform 0.2s ease;
    }

    /* Override Mermaid's small default font sizes in class diagrams */
    .mermaid svg { font-size: 18px !important; }
    .mermaid svg g.classGroup text { font-size: 18px !important; }
    .mermaid svg .classTitleText { font-size: 28px !important; }
    .mermaid svg .nodeLabel { font-size: 18px !important; }
    .mermaid svg .edgeLabel { font-size: 16px !important; }
    .mermaid svg .label text { font-size: 18px !important; }

    /* Color coding: interface blocks (blue) */
    .mermaid svg g.node.interfaceStyle > g:first-child > path:first-child {
      fill: #2374ab !important;
    }
    .mermaid svg g.node.interfaceStyle > g:first-child > path:nth-child(2) {
      stroke: #1a5a8a !important;
      stroke-width: 2px !important;
    }
    .mermaid svg g.node.interfaceStyle .nodeLabel {
      color: #fff !important;
    }

    /* Color coding: implementation blocks (green) */
    .mermaid svg g.node.implStyle > g:first-child > path:first-child {
      fill: #4a9c6d !important;
    }
    .mermaid svg g.node.implStyle > g:first-child > path:nth-child(2) {
      stroke: #357a50 !important;
      stroke-width: 2px !important;
    }
    .mermaid svg g.node.implStyle .nodeLabel {
      color: #fff !important;
    }
  </style>
</head>
<body>
  <main>
    <nav class="topnav">
      <a href="/">All lessons</a>
      {{if .Prev}}<a href="/lesson/{{.Prev.Slug}}">Previous: {{.Prev.Title}}</a>{{end}}
      {{if .Next}}<a href="/lesson/{{.Next.Slug}}">Next: {{.Next.Title}}</a>{{end}}
    </nav>

    <h1>{{.Title}}</h1>
    {{if .Terms}}<div class="term-tags">{{.Terms}}</div>{{end}}

    {{if .Doc}}<div class="prose">{{.Doc}}</div>{{end}}

    {{range .Sources}}
    <div class="source-path"><code>{{.Path}}</code></div>
    <pre class="code"><code>{{.Code}}</code></pre>
    {{end}}

    {{if .Mermaid}}
    <h2>Diagram</h2>
    <div class="controls">
      <button id="zoom-in" title="Zoom In">+ Zoom In</button>
      <button id="zoom-out" title="Zoom Out">- Zoom Out</button>
      <button id="zoom-reset" title="Reset Zoom">Reset</button>
      <button id="copy-src" title="Copy Mermaid Source">Copy Mermaid Source</button>
      <a href="/lesson/{{.Slug}}/mermaid.md"><button>Raw Mermaid</button></a>
    </div>
    <div class="diagram-viewport">
      <div class="diagram-container" id="diagram-container">
        <pre class="mermaid">{{.Mermaid}}</pre>
      </div>
    </div>
    {{end}}

    {{if .Related}}
    <h2>See also</h2>
    <p>{{range .Related}}<a href="/lesson/{{.Slug}}">{{.Title}}</a> {{end}}</p>
    {{end}}
  </main>

  <script src="https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.min.js"></script>
  <script>
    mermaid.initialize({
      startOnLoad: true,
      theme: 'base',
      themeVariables: {
        primaryColor: '#ffffff',
        primaryBorderColor: '#cccccc',
        primaryTextColor: '#000000',
        lineColor: '#555555',
        fontSize: '16px'
      }
    });

    (function() {
      var scale = 1;
      var step = 0.15;
      var minScale = 0.1;
      var maxScale = 10;
      var container = document.getElementById('diagram-container');
      if (!container) return;

      function applyZoom() {
        container.style.transform = 'scale(' + scale + ')';
      }

      applyZoom();

      document.getElementById('zoom-in').addEventListener('click', function() {
        scale = Math.min(maxScale, scale + step);
        applyZoom();
      });

      document.getElementById('zoom-out').addEventListener('click', function() {
        scale = Math.max(minScale, scale - step);
        applyZoom();
      });

      document.getElementById('zoom-reset').addEventListener('click', function() {
        scale = 1;
        applyZoom();
      });

      document.getElementById('copy-src').addEventListener('click', function() {
        var src = {{.Mermaid}};
        navigator.clipboard.writeText(src).then(function() {
          var btn = document.getElementById('copy-src');
          var orig = btn.textContent;
          btn.textContent = 'Copied!';
          setTimeout(function() { btn.textContent = orig; }, 1500);
        });
      });
    })();
  </script>
</body>
</html>
`
