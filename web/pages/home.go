// Package pages holds the full HTML pages served by the app.
package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrsketch/web/components"
)

const title = "QR Code Generator & Image to Sketch Converter"

// HomePage renders both tools as tabs. All artifacts live in the browser: the
// page keeps the last QR code and sketch it received and saves those.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><script src="https://cdn.tailwindcss.com"></script></head>`,
			templ.EscapeString(title))
		io.WriteString(w, `<body class="mx-auto max-w-3xl p-6 font-sans">`)
		fmt.Fprintf(w, `<h1 class="mb-4 text-2xl font-semibold">%s</h1>`, templ.EscapeString(title))

		if err := components.TabBar(components.Tabs).Render(ctx, w); err != nil {
			return err
		}

		fmt.Fprintf(w, qrPanel, templ.EscapeString(components.DefaultLink))
		io.WriteString(w, sketchPanel)
		io.WriteString(w, `<div id="toasts"></div>`)
		fmt.Fprintf(w, `<script>%s</script>`, pageScript(components.TabButtonClass(true), components.TabButtonClass(false)))
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

const qrPanel = `<section id="panel-qr" class="py-6 text-center">
<label for="link" class="block text-lg">Enter Link:</label>
<input id="link" type="text" value="%s" class="my-2 w-80 rounded border px-3 py-2 text-lg">
<div><button type="button" class="rounded bg-gray-900 px-4 py-2 text-white" onclick="generateQR()">Generate QR Code</button></div>
<p id="qr-info" class="my-2 text-sm"></p>
<img id="qr-img" alt="" class="mx-auto hidden max-w-[300px]">
<div class="mt-4"><button type="button" class="rounded border px-4 py-2" onclick="saveQR()">Save QR Code</button></div>
</section>`

const sketchPanel = `<section id="panel-sketch" class="hidden py-6 text-center">
<input id="photo" type="file" accept="image/jpeg,image/png" class="my-2">
<div><button type="button" class="rounded bg-gray-900 px-4 py-2 text-white" onclick="openImage()">Open Image</button></div>
<div id="compare" class="mt-4 hidden flex justify-center gap-2">
<img id="original-img" alt="Original" class="max-h-[300px] max-w-[300px] object-contain">
<img id="sketch-img" alt="Sketch" class="max-h-[300px] max-w-[300px] object-contain">
</div>
<div class="mt-4"><button id="save-sketch" type="button" class="rounded border px-4 py-2" disabled onclick="saveSketch()">Save Sketch</button></div>
</section>`

func pageScript(activeClass, idleClass string) string {
	return fmt.Sprintf(`
var activeTab = %q, idleTab = %q;
var qrURL = null, sketchBlob = null;
function showTab(id) {
  document.querySelectorAll('[data-tab]').forEach(function(b) {
    b.className = b.dataset.tab === id ? activeTab : idleTab;
    document.getElementById('panel-' + b.dataset.tab).classList.toggle('hidden', b.dataset.tab !== id);
  });
}
function notify(code) {
  var body = new URLSearchParams({code: code, dismissible: 'on'});
  fetch('/api/htmx/toast', {method: 'POST', body: body}).then(function(r) { return r.text(); }).then(function(html) {
    var box = document.getElementById('toasts');
    box.insertAdjacentHTML('beforeend', html);
    var el = box.lastElementChild;
    var ms = parseInt(el.dataset.duration || '0', 10);
    if (ms > 0) setTimeout(function() { el.remove(); }, ms);
  });
}
function generateQR() {
  var link = document.getElementById('link').value.trim();
  if (!link) { notify('empty-url'); return; }
  qrURL = '/api/qr?url=' + encodeURIComponent(link);
  var img = document.getElementById('qr-img');
  img.src = qrURL;
  img.classList.remove('hidden');
  document.getElementById('qr-info').textContent = 'QR Code generated successfully!';
}
function saveQR() {
  if (!qrURL) { notify('no-qr'); return; }
  window.location = qrURL + '&download=1';
}
function openImage() {
  var input = document.getElementById('photo');
  if (!input.files.length) { notify('no-image'); return; }
  var file = input.files[0], form = new FormData();
  form.append('image', file);
  sketchBlob = null;
  document.getElementById('save-sketch').disabled = true;
  fetch('/api/sketch', {method: 'POST', body: form}).then(function(r) {
    if (!r.ok) throw r.status;
    return r.blob();
  }).then(function(b) {
    sketchBlob = b;
    document.getElementById('original-img').src = URL.createObjectURL(file);
    document.getElementById('sketch-img').src = URL.createObjectURL(b);
    document.getElementById('compare').classList.remove('hidden');
    document.getElementById('save-sketch').disabled = false;
  }).catch(function(status) {
    notify(status === 413 ? 'too-large' : status === 400 ? 'no-image' : 'bad-image');
  });
}
function saveSketch() {
  if (!sketchBlob) { notify('no-sketch'); return; }
  var a = document.createElement('a');
  a.href = URL.createObjectURL(sketchBlob);
  a.download = 'sketch.jpg';
  a.click();
}
`, activeClass, idleClass)
}
