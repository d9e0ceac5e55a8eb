package stream

import (
	"fmt"
	"net/http"
)

const viewerPage = `<!DOCTYPE html>
<html>
<head><title>spheretrace</title></head>
<body style="margin:0;background:#000">
<img id="frame" width="%d" height="%d" style="image-rendering:pixelated">
<script>
const img = document.getElementById("frame");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.binaryType = "blob";
let url = null;
ws.onmessage = (m) => {
  const next = URL.createObjectURL(new Blob([m.data], {type: "%s"}));
  img.src = next;
  if (url) URL.revokeObjectURL(url);
  url = next;
};
const send = (o) => { if (ws.readyState === 1) ws.send(JSON.stringify(o)); };
img.addEventListener("mousemove", (e) => {
  const r = img.getBoundingClientRect();
  send({kind: "motion", x: Math.floor((e.clientX - r.left) * %d / r.width), y: Math.floor((e.clientY - r.top) * %d / r.height)});
});
img.addEventListener("wheel", (e) => {
  e.preventDefault();
  send({kind: e.deltaY < 0 ? "scroll-up" : "scroll-down"});
}, {passive: false});
</script>
</body>
</html>
`

func (s *Server) serveViewer(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, viewerPage, s.opts.Width, s.opts.Height, "image/"+string(s.opts.Format), s.opts.Width, s.opts.Height)
}
