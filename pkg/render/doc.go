// Package render draws a grid as an SVG tile map: belts as arrows along
// their facing, underground belt ends as marked squares linked by a
// dashed tunnel line, splitters spanning their two tiles, and plain
// obstacles as flat blocks. It never mutates the grid it's given.
package render
