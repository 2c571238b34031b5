// Package logging holds the engine's single shared logger, mirroring the
// teacher's package-level "_lg = logrus.New()" / SetLogger(lg) pattern
// (define.go) so every internal package logs through one configurable
// instance instead of each constructing its own.
package logging

import "github.com/sirupsen/logrus"

var L = logrus.New()

// SetLogger replaces the shared logger; the root gs1 package exposes this
// as gs1.SetLogger.
func SetLogger(lg *logrus.Logger) {
	L = lg
}
