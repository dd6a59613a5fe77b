package config

import "math"

// Phi is the golden ratio, used for the default figure aspect
var Phi = (1 + math.Sqrt(5)) / 2
