// Package gallery maintains the rolling collection of recently generated
// images.
//
// The gallery holds at most MaxRecords records, newest first. Adding a
// record to a full gallery evicts the oldest record and releases its
// image resource through the Releaser, so the blob directory never grows
// past the gallery capacity.
//
// State is written through on every mutation: the full record list is
// serialized to JSON and handed to the Repository under StateKey. Loading
// never fails; unreadable state is logged and discarded so the
// application always starts with a usable (possibly empty) gallery.
//
// Typical wiring:
//
//	st, err := store.OpenDefault()
//	if err != nil { ... }
//	mgr := gallery.NewManager(st.KV.Value(gallery.StateKey), st.Blobs)
//	rec, err := mgr.Add(res.Handle, prompt, settings.AspectRatio16x9)
package gallery
