package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
	"github.com/MrSnakeDoc/newtab/internal/logger"
	"github.com/MrSnakeDoc/newtab/internal/state"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

type pageTile struct {
	state.Tile
	Style template.CSS
}

type pageData struct {
	Tiles           []pageTile
	BackgroundStyle template.CSS
	Settings        domain.Settings
	Presets         []string
	MaxBlur         int
}

// BackgroundStyle renders the CSS for the page background. The URL was
// validated on the way in and is escaped again for the url("...") context.
func BackgroundStyle(s domain.Settings) template.CSS {
	if s.BackgroundImage == "" {
		return ""
	}
	css := fmt.Sprintf(`background-image: url("%s");`, validate.EscapeForCSSURL(s.BackgroundImage))
	if s.BlurEnabled && s.BlurStrength > 0 {
		css += fmt.Sprintf(" filter: blur(%dpx);", s.BlurStrength)
	}
	return template.CSS(css)
}

// Page renders the board shell.
func Page(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings := d.Store.Settings()
		tiles := d.Store.Tiles()

		data := pageData{
			Tiles:           make([]pageTile, 0, len(tiles)),
			BackgroundStyle: BackgroundStyle(settings),
			Settings:        settings,
			Presets:         validate.Presets,
			MaxBlur:         domain.MaxBlurStrength,
		}
		for _, t := range tiles {
			// t.Color is a validated #rrggbb
			data.Tiles = append(data.Tiles, pageTile{Tile: t, Style: template.CSS("--tile-color: " + t.Color + ";")})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := pageTemplate.Execute(w, data); err != nil {
			d.Logger.Warn("failed to render page", logger.Error(err))
		}
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>New Tab</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; color: #fff; background: #0f172a; min-height: 100vh; }
.bg { position: fixed; inset: 0; background-size: cover; background-position: center; z-index: -1; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, 96px); gap: 24px; padding: 10vh 10vw; }
.tile { position: relative; display: flex; flex-direction: column; align-items: center; gap: 8px; color: inherit; text-decoration: none; user-select: none; -webkit-touch-callout: none; }
.tile .face { width: 64px; height: 64px; border-radius: 16px; display: grid; place-items: center; background: var(--tile-color); font-size: 28px; }
.tile img { width: 40px; height: 40px; }
.tile.armed .face { outline: 2px solid #ef4444; }
.delete { position: absolute; top: -8px; right: 8px; border: 0; border-radius: 50%; width: 24px; height: 24px; background: #ef4444; color: #fff; cursor: pointer; }
.panel { padding: 0 10vw 5vh; display: flex; gap: 12px; flex-wrap: wrap; }
</style>
</head>
<body>
<div class="bg" id="bg" style="{{.BackgroundStyle}}"></div>
<main class="grid" id="grid">
{{- range .Tiles}}
<a class="tile{{if .Armed}} armed{{end}}" href="{{.URL}}" data-id="{{.ID}}" title="{{.Name}}" style="{{.Style}}" draggable="false">
  <span class="face">{{if eq .Display.Kind "icon"}}<img src="{{.Display.IconURL}}" alt="" data-icon>{{else}}{{.Display.Initial}}{{end}}</span>
  <span class="label">{{.Label}}</span>
  {{- if .Armed}}<button class="delete" data-delete aria-label="Delete {{.Name}}">&times;</button>{{end}}
</a>
{{- end}}
</main>
<form class="panel" id="add">
  <input name="url" placeholder="example.com" required>
  <input name="name" placeholder="Name" required>
  <select name="color">{{range .Presets}}<option value="{{.}}">{{.}}</option>{{end}}</select>
  <select name="displayMode"><option>auto</option><option>icon</option><option>text</option></select>
  <button type="submit">Add</button>
</form>
<form class="panel" id="settings">
  <input name="url" placeholder="Background image URL" value="{{.Settings.BackgroundImage}}">
  <label><input type="checkbox" name="enabled"{{if .Settings.BlurEnabled}} checked{{end}}> Blur</label>
  <input type="range" name="strength" min="0" max="{{.MaxBlur}}" value="{{.Settings.BlurStrength}}">
  <button type="submit">Apply</button>
  <button type="button" id="clear-bg">Clear</button>
</form>
<script>
(() => {
  const send = (method, path, body) => fetch(path, {
    method, headers: {"Content-Type": "application/json"},
    body: body === undefined ? undefined : JSON.stringify(body),
  }).then(r => r.ok ? r.json().catch(() => ({})) : Promise.reject(r));
  // gesture events go out one at a time so the server sees them in order
  let queue = Promise.resolve();
  const gesture = (id, ev) => {
    const at = Date.now();
    queue = queue.catch(() => {}).then(() => send("POST", "/api/gestures/" + encodeURIComponent(id) + "/" + ev, {at}));
    return queue;
  };
  // redraw once the server has armed a tile the page still shows plain
  const showArmed = (tile, r) => {
    if (r && r.armed === tile.dataset.id && !tile.classList.contains("armed")) location.reload();
  };

  document.querySelectorAll(".tile").forEach(tile => {
    const id = tile.dataset.id;
    for (const ev of ["pointerdown", "pointerup", "pointercancel"]) {
      tile.addEventListener(ev, () => gesture(id, ev).then(r => { if (ev === "pointerup") showArmed(tile, r); }, () => {}));
    }
    tile.addEventListener("contextmenu", e => { e.preventDefault(); gesture(id, "contextmenu"); });
    tile.addEventListener("click", e => {
      e.preventDefault();
      e.stopPropagation();
      if (e.target.matches("[data-delete]")) {
        gesture(id, "delete").then(() => location.reload());
        return;
      }
      gesture(id, "click").then(r => {
        if (r.action === "navigate" && r.url) location.href = r.url;
        else if (r.action === "disarm") location.reload();
        else if (r.action === "suppress") showArmed(tile, r);
      }, () => {});
    });
    const img = tile.querySelector("[data-icon]");
    if (img) img.addEventListener("error", () => send("POST", "/api/shortcuts/" + encodeURIComponent(id) + "/icon-error").then(() => location.reload()));
  });

  document.body.addEventListener("click", e => {
    if (e.target.closest(".tile, form")) return;
    send("POST", "/api/gestures/background/click").then(r => { if (r.action === "disarm") location.reload(); });
  });

  document.getElementById("add").addEventListener("submit", e => {
    e.preventDefault();
    const f = new FormData(e.target);
    send("POST", "/api/shortcuts", Object.fromEntries(f)).then(() => location.reload(), () => {});
  });
  document.getElementById("settings").addEventListener("submit", e => {
    e.preventDefault();
    const f = e.target;
    send("PUT", "/api/settings/background", {url: f.url.value})
      .then(() => send("PUT", "/api/settings/blur", {enabled: f.enabled.checked, strength: Number(f.strength.value)}))
      .then(() => location.reload(), () => {});
  });
  document.getElementById("clear-bg").addEventListener("click", () => send("DELETE", "/api/settings/background").then(() => location.reload()));
})();
</script>
</body>
</html>
`))
