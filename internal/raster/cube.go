package raster

import "trskit/internal/vec"

// cubeCorners are the vertices of the unit cube centered on the origin.
var cubeCorners = [8]vec.DVec3{
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
	{0.5, 0.5, -0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{0.5, 0.5, 0.5},
	{-0.5, 0.5, 0.5},
}

// cubeFaces index cubeCorners as quads.
var cubeFaces = [6][4]int{
	{0, 3, 2, 1}, // -Z
	{4, 5, 6, 7}, // +Z
	{0, 4, 7, 3}, // -X
	{1, 2, 6, 5}, // +X
	{0, 1, 5, 4}, // -Y
	{3, 7, 6, 2}, // +Y
}
