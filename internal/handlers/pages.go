package handlers

// Static informational pages served next to the webhook.

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>SMS Directions</title></head>
<body>
<h1>SMS Directions</h1>
<p>Text a travel request and get turn-by-turn directions back, no app needed.</p>
<ul>
<li><code>WALK from [A] to [B]</code></li>
<li><code>TRANSIT from [A] to [B]</code></li>
<li><code>DRIVE from [A] to [B]</code></li>
<li><code>HELP</code> for instructions</li>
</ul>
<p><a href="/privacy">Privacy</a> &middot; <a href="/terms">Terms</a></p>
</body>
</html>`

const privacyHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Privacy - SMS Directions</title></head>
<body>
<h1>Privacy</h1>
<p>Messages are processed to answer the request they contain and are not stored.
No message history, account, or location data is kept by this service.</p>
<p><a href="/">Home</a></p>
</body>
</html>`

const termsHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Terms - SMS Directions</title></head>
<body>
<h1>Terms of Service</h1>
<p>Directions are provided as-is, for convenience only. Always follow posted
signage and local conditions. Standard message rates apply.</p>
<p><a href="/">Home</a></p>
</body>
</html>`
