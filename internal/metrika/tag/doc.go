// Package tag builds the Yandex Metrika loader and no-script pixel markup.
//
// Markup is returned as structured elements rather than concatenated HTML so
// hosts can inspect ids and attributes, while the loader body stays
// byte-for-byte identical to the vendor bootstrap snippet.
package tag
