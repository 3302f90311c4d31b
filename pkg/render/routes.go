package render

import "fmt"

// Routes turns view state into links, so the same page model serves both the
// web server and the static export.
type Routes struct {
	Featured string
	All      string
	// Play and PlayAll are format strings taking the video id.
	Play    string
	PlayAll string
}

// ServerRoutes are the routes of the serve command.
var ServerRoutes = Routes{
	Featured: "/#videos",
	All:      "/?view=all#videos",
	Play:     "/play/%s",
	PlayAll:  "/play/%s?view=all",
}

// StaticRoutes are the file names written by the render command.
var StaticRoutes = Routes{
	Featured: "/index.html#videos",
	All:      "/all.html#videos",
	Play:     "/play/%s.html",
	PlayAll:  "/play/%s.html",
}

// ViewHref links to the featured or the full view.
func (r Routes) ViewHref(showAll bool) string {
	if showAll {
		return r.All
	}
	return r.Featured
}

// PlayHref links to the page with the given video playing.
func (r Routes) PlayHref(id string, showAll bool) string {
	if showAll {
		return fmt.Sprintf(r.PlayAll, id)
	}
	return fmt.Sprintf(r.Play, id)
}

// CloseHref links back from an open player to the view it was opened from.
func (r Routes) CloseHref(showAll bool) string {
	return r.ViewHref(showAll)
}
