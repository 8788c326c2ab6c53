// Package branding holds product naming shared by service surfaces.
package branding

// AppName is the product name shown in page titles and logs.
const AppName = "Metrika"
