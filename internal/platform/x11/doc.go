// Package x11 implements the platform backend over the X wire protocol
// using the pure-Go jezek/xgb bindings. It registers itself with the
// platform package on unix builds.
package x11
