// Package sdk describes the layout of an FMOD Engine SDK installation: the
// optional feature modules, where each module keeps its headers and
// libraries, and the version recorded in the core headers.
package sdk
