// Package store provides local persistence for easel: a string key-value
// store for application state and a blob store for generated image bytes.
//
// # Layout
//
// Everything lives under a single data directory, resolved per platform:
//   - Linux: $XDG_DATA_HOME/easel or $HOME/.local/share/easel
//   - macOS: $HOME/.local/share/easel
//   - Windows: %LOCALAPPDATA%\easel
//
// Inside it:
//
//	state/    one file per state key (recentImages, darkMode)
//	images/   one file per generated image, named by its handle
//
// # State Keys
//
// The key-value store is deliberately primitive: string in, string out,
// atomic replace on write. A read that fails for any reason (missing file,
// permission error) reports the key as absent rather than failing the
// caller; callers treat absence as default state.
//
// # Blob Handles
//
// Image bytes are acquired into the blob store, which returns an opaque
// handle (a time-ordered UUID plus extension). The handle is what gets
// persisted in gallery records. Releasing a handle deletes the backing
// file; releasing an already-gone handle is a no-op, so release is safe to
// call during cleanup paths.
//
// # Usage
//
//	st, err := store.OpenDefault()
//	if err != nil { ... }
//	handle, err := st.Blobs.Acquire(imageBytes, "image/png")
//	...
//	st.KV.Set("darkMode", "true")
package store
