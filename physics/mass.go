package physics

// Mass returns the areal mass of a disc: density × radius²
func Mass(radius, density float64) float64 {
	return density * radius * radius
}
