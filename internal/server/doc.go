// Package server serves the builder over HTTP and keeps one live builder
// per browser session.
//
// The page handler creates a session and sets the featuregrid_session
// cookie. The browser then opens /ws and exchanges JSON messages:
//
//	→ {"type":"event","seq":3,"hid":"h17","event":"click"}
//	← {"type":"render","seq":4,"html":"<div id=\"builder\" ..."}
//
//	→ {"type":"action","action":{"type":"select-layout","id":"bento"}}
//	← {"type":"error","code":"E301","message":"Unknown layout: ..."}
//
// Events name an element by the hydration id of the frame they were
// produced from. An event for an older frame is not run; the server
// answers with the current frame instead.
//
// /showcase serves the card gallery the same way, with its own
// featuregrid_showcase cookie and socket at /showcase/ws. Its sessions
// take events only.
package server
