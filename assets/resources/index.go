package resources

import "path"

const (
	AppID = "com.github.aunetx.Termini"

	appPath = "/com/github/aunetx/Termini/"

	GettextPackage = "termini"

	ResourcesFileName = "termini.gresource"
)

// Set with -ldflags "-X github.com/pojntfx/termini/assets/resources.Version=..."
var (
	Version = "0.1.0"
	Profile = "Default"
)

//go:generate sh -c "glib-compile-schemas . && glib-compile-resources --target=termini.gresource termini.gresource.xml"
var (
	ResourceBasePath     = appPath
	ResourceWindowUIPath = path.Join(appPath, "ui", "window.ui")
	ResourceStyleCSSPath = path.Join(appPath, "style.css")

	ResourceGSchemasCompiledPath = path.Join(appPath, "gschemas.compiled")
)

const (
	ProfileDevel = "Devel"

	WebsiteURL = "https://github.com/aunetx/termini/"
)

var (
	Authors = []string{"Aurélien Hamy"}
	Artists = []string{"Aurélien Hamy"}
)
