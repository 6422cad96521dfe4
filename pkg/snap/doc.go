// Package snap holds the static knowledge about snapcraft builds: the bases
// with a build image and the snapcraft channels each of them accepts.
package snap
