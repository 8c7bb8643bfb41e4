// Package classify infers structured media metadata from unstructured
// filenames.
//
// Classification is a pure function of the file path: extensions dispatch
// into video, recognized-garbage, and unknown families, and video filenames
// run through a fixed, ordered cascade of pattern rules. The cascade order is
// a deliberate disambiguation policy (episode-shaped rules before the movie
// year rule) and must not be reordered.
package classify
