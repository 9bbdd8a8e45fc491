package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var landingPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>TripVerse Search</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#0f766e,#2563eb); color: #fff; min-height: 100vh; display: flex; flex-direction: column; }
header { padding: 60px 20px 30px; text-align: center; }
.search { max-width: 640px; margin: 0 auto; display: flex; gap: 8px; padding: 0 20px; }
input { flex: 1; padding: 12px; border: none; border-radius: 4px; font-size: 16px; }
button { padding: 12px 24px; font-size: 16px; border: none; border-radius: 4px; cursor: pointer; background: rgba(255,255,255,0.2); color: #fff; transition: background 0.3s; }
button:hover { background: rgba(255,255,255,0.4); }
#results { max-width: 640px; margin: 20px auto; padding: 0 20px; flex: 1; width: 100%; box-sizing: border-box; }
.group { background: rgba(255,255,255,0.1); border-radius: 8px; padding: 12px 16px; margin-bottom: 12px; }
.group h3 { margin: 4px 0 8px; text-transform: capitalize; }
.item { padding: 6px 0; border-top: 1px solid rgba(255,255,255,0.15); }
footer { text-align: center; padding: 20px; font-size: 14px; opacity: 0.8; }
</style>
</head>
<body>
<header>
  <h1>TripVerse</h1>
  <p>Tours, hotels, cars, activities and tickets in one search.</p>
</header>
<div class="search">
  <input id="q" type="text" placeholder="Where to next?" onkeydown="if(event.key==='Enter')runSearch()" />
  <button onclick="runSearch()">Search</button>
</div>
<div id="results"></div>
<footer>TripVerse API &middot; <a href="/swagger/index.html" style="color:#fff">API docs</a></footer>
<script>
async function runSearch() {
  const q = document.getElementById('q').value;
  const container = document.getElementById('results');
  const response = await fetch('/api/search', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ q: q, limit: 20 })
  });
  const payload = await response.json();
  if (!payload.success) {
    container.innerHTML = '<div class="group">' + (payload.message || 'Search failed') + '</div>';
    return;
  }
  const data = payload.data;
  if (data.totalResults === 0) {
    container.innerHTML = '<div class="group">No results found. Try different search terms.</div>';
    return;
  }
  let html = '';
  for (const type of Object.keys(data.results)) {
    const items = data.results[type];
    if (!items.length) continue;
    html += '<div class="group"><h3>' + type + ' (' + items.length + ')</h3>';
    for (const item of items) {
      const title = item.title || item.name || (item.brand ? item.brand + ' ' + item.model : '');
      html += '<div class="item">' + title + '</div>';
    }
    html += '</div>';
  }
  container.innerHTML = html;
}
</script>
</body>
</html>`

func RegisterPages(e *echo.Echo, frontendURL string) {
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPageHTML)
	})

	e.GET("/app", func(c echo.Context) error {
		if frontendURL != "" {
			return c.Redirect(http.StatusTemporaryRedirect, frontendURL)
		}
		return c.HTML(http.StatusOK, "<h1>TripVerse</h1><p>The web app is not configured on this deployment.</p>")
	})
}
