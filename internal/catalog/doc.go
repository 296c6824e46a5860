// Package catalog parses and orders philatelic catalog numbers.
//
// A catalog number such as "C5" or "300d" splits into an alphabetic series
// prefix, a numeric value, and a variety suffix. Parsing is total: malformed
// input degrades to zero/empty fields rather than failing. The comparator
// orders numbers the way collectors expect ("2" before "10", plain numerals
// before the airmail "C" series), and the range filter decides membership in
// a [lower, upper] bound expressed in the same notation.
package catalog
