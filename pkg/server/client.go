package server

// StyleSheet lays out the slider classes emitted by the delegate. Static
// exports embed it too.
const StyleSheet = `
body { font-family: system-ui, sans-serif; margin: 2rem; }
.slider { position: relative; margin: 2rem 0; }
.slider.horizontal { width: 320px; height: 24px; }
.slider.vertical { width: 24px; height: 240px; }
.slider .track { position: absolute; inset: 0; display: block; }
.slider.horizontal .track > span { position: absolute; top: 10px; height: 4px; background: #ccd; }
.slider.vertical .track > span { position: absolute; left: 10px; width: 4px; background: #ccd; }
.slider.horizontal .left { left: 0; width: 4px; border-radius: 2px 0 0 2px; }
.slider.horizontal .middle { left: 4px; right: 4px; }
.slider.horizontal .right { right: 0; width: 4px; border-radius: 0 2px 2px 0; }
.slider.vertical .left { top: 0; height: 4px; }
.slider.vertical .middle { top: 4px; bottom: 4px; }
.slider.vertical .right { bottom: 0; height: 4px; }
.slider .step-mark { position: absolute; width: 2px; height: 8px; background: #889; }
.slider.horizontal .step-mark { top: 16px; margin-left: -1px; }
.slider.vertical .step-mark { left: 16px; width: 8px; height: 2px; margin-top: -1px; }
.slider .handle { position: absolute; width: 16px; height: 16px; border-radius: 50%; background: #36c; }
.slider.horizontal .handle { top: 4px; margin-left: -8px; }
.slider.vertical .handle { left: 4px; margin-top: -8px; }
.slider.small-size .handle { width: 12px; height: 12px; }
#controls label { margin-right: 1rem; }
`

// clientScript connects to /ws with JSON frames, applies patches by
// data-hid, and sends state changes from a small control panel.
const clientScript = `
(function () {
  var OP = { SetAttr: 2, RemoveAttr: 3, InsertNode: 4, RemoveNode: 5, AddClass: 16, RemoveClass: 17, SetStyle: 19, RemoveStyle: 20 };
  var slider = document.querySelector('.slider');
  var hid = function (id) { return document.querySelector('[data-hid="' + id + '"]'); };

  function apply(p) {
    var el = hid(p.hid);
    switch (p.op) {
      case OP.SetAttr: if (el) el.setAttribute(p.key, p.value || ''); break;
      case OP.RemoveAttr: if (el) el.removeAttribute(p.key); break;
      case OP.InsertNode:
        var parent = hid(p.parentId);
        if (!parent) break;
        var t = document.createElement('template');
        t.innerHTML = p.html;
        parent.insertBefore(t.content.firstElementChild, parent.children[p.index || 0] || null);
        break;
      case OP.RemoveNode: if (el) el.remove(); break;
      case OP.AddClass: if (el) el.classList.add(p.value); break;
      case OP.RemoveClass: if (el) el.classList.remove(p.value); break;
      case OP.SetStyle: if (el) el.style.setProperty(p.key, p.value || ''); break;
      case OP.RemoveStyle: if (el) el.style.removeProperty(p.key); break;
    }
  }

  var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(scheme + location.host + '/ws' + location.search + (location.search ? '&' : '?') + 'format=json');
  ws.onmessage = function (ev) {
    var frame = JSON.parse(ev.data);
    if (frame.type === 'error') { console.warn('slider:', frame.error); return; }
    (frame.patches || []).forEach(apply);
  };
  function send(change) { if (ws.readyState === 1) ws.send(JSON.stringify(change)); }

  var min = Number(slider.getAttribute('aria-valuemin'));
  var max = Number(slider.getAttribute('aria-valuemax'));
  var panel = document.createElement('div');
  panel.id = 'controls';
  panel.innerHTML =
    '<label>value <input id="c-value" type="range" step="any"></label>' +
    '<label>max <input id="c-max" type="number" style="width:4em"></label>' +
    '<label><input id="c-vertical" type="checkbox"> vertical</label>' +
    '<label><input id="c-marks" type="checkbox"> step marks</label>';
  slider.parentNode.insertBefore(panel, slider);

  var value = document.getElementById('c-value');
  value.min = min; value.max = max; value.value = slider.getAttribute('aria-valuenow');
  value.oninput = function () { send({ value: Number(value.value) }); };

  var maxInput = document.getElementById('c-max');
  maxInput.value = max;
  maxInput.onchange = function () {
    value.max = maxInput.value;
    send({ maximum: Number(maxInput.value) });
  };

  var vertical = document.getElementById('c-vertical');
  vertical.checked = slider.classList.contains('vertical');
  vertical.onchange = function () { send({ orientation: vertical.checked ? 'vertical' : 'horizontal' }); };

  var marks = document.getElementById('c-marks');
  marks.checked = slider.querySelector('.step-mark') !== null;
  marks.onchange = function () { send({ markSteps: marks.checked }); };
})();
`
