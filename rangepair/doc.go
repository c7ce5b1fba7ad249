// Package rangepair implements the classical range-pair counting and
// level-crossing counting methods: simpler one-pass alternatives to
// the four-point matcher in residue, operating directly on a turning
// -point stream rather than maintaining a matched-and-closed residue.
package rangepair
