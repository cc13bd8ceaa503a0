package board

//applyConwayRules decides the next state of a cell
//alive survives with 2 or 3 neighbours, dead is born with exactly 3
func applyConwayRules(neighbours int, alive bool) bool {
	return (alive && neighbours == 2) || neighbours == 3
}
