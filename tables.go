package broadvoice

// Cosine-domain grid for the LSP root search, from 1 down to -1.
var lspGrid = [...]float64{
	1.00000000, 0.99862953, 0.99452190, 0.98768834, 0.97814760, 0.96592583,
	0.95105652, 0.93358043, 0.91354546, 0.89100652, 0.86602540, 0.83867057,
	0.80901699, 0.77714596, 0.74314483, 0.70710678, 0.66913061, 0.62932039,
	0.58778525, 0.54463904, 0.50000000, 0.45399050, 0.40673664, 0.35836795,
	0.30901699, 0.25881905, 0.20791169, 0.15643447, 0.10452846, 0.05233596,
	0.00000000, -0.05233596, -0.10452846, -0.15643447, -0.20791169, -0.25881905,
	-0.30901699, -0.35836795, -0.40673664, -0.45399050, -0.50000000, -0.54463904,
	-0.58778525, -0.62932039, -0.66913061, -0.70710678, -0.74314483, -0.77714596,
	-0.80901699, -0.83867057, -0.86602540, -0.89100652, -0.91354546, -0.93358043,
	-0.95105652, -0.96592583, -0.97814760, -0.98768834, -0.99452190, -0.99862953,
	-1.00000000,
}
