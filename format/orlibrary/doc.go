// Package orlibrary reads and writes the OR-Library USCP instance text
// format: whitespace-separated integers, points-number then
// subsets-number, then subsets-number ignored unicost values, then for
// each point the count of covering subsets followed by that many
// 1-based subset indices. Write mirrors the reference writer's
// twelve-numbers-per-line soft wrap.
package orlibrary
