// Package routepath centralizes site URL paths.
package routepath

const (
	Home         = "/"
	About        = "/about"
	Services     = "/services"
	Blogs        = "/blogs"
	Media        = "/media"
	Team         = "/teammembers"
	Contact      = "/contact"
	ContactUs    = "/contact-us"
	ContactUsAlt = "/contactus"
	Donate       = "/donate"
	// DonateTypo is a misspelled path kept so old links keep working.
	DonateTypo   = "/doante"
	Privacy      = "/privacy"
	Preservation = "/preservation"
	Cookies      = "/cookies"
	Access       = "/access-/-use"
	Terms        = "/terms"

	Make2D      = "/2dgames"
	Make3D      = "/3dgames"
	Optimize2D  = "/refine2dgames"
	Optimize3D  = "/refine3dgames"
	Poster      = "/gamecovers"
	PosterImage = "/gamecovers/poster.png"

	Healthz      = "/healthz"
	Favicon      = "/favicon.ico"
	Logo         = "/logo.png"
	StaticPrefix = "/static/"
)

// Download returns the scaffold download path under a maker page.
func Download(makerPath string) string {
	return makerPath + "/download"
}

// Sent returns path with the submission confirmation flag.
func Sent(path string) string {
	return path + "?sent=1"
}
