package formwidgets

import (
	"embed"
	"io/fs"
)

//go:embed pkg/runtime/assets/*.js
var embeddedRuntimeAssets embed.FS

// RuntimeScriptName is the behaviors bundle file name inside RuntimeAssetsFS.
const RuntimeScriptName = "formwidgets-behaviors.js"

// RuntimeAssetsFS exposes the browser behaviors bundle so Go applications
// can serve it without a JS build step.
//
// Typical mount:
//
//	mux.Handle("/runtime/",
//	  http.StripPrefix("/runtime/",
//	    http.FileServerFS(formwidgets.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "pkg/runtime/assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}
