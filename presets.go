package noise

// The constructors in this file build complete module graphs for common
// procedural textures, the same textures the teacher produced with a
// single hand-rolled noise object's Marble/Wood/Clouds/Ridge helper
// methods. Here each texture is instead assembled purely from this
// package's own generator/modifier/combiner/transform vocabulary, so the
// graphs compose and cache like any other module tree.

// Marble builds a veined marble texture: Turbulence distorts the
// sampling of a low-frequency Perlin base, and the distorted output is
// stretched and pushed through a Curve control table shaped like one
// period of a sine wave, approximating the teacher's
// sin((x+distortion)*frequency) banding without any module calling
// math.Sin directly.
func Marble(seed int32, frequency float64) Module {
	base := NewPerlin(seed)
	base.Frequency = frequency
	base.OctaveCount = 3

	turb := NewTurbulence(seed+1, frequency*0.5, 3, 0.5)
	turb.SetSourceModule(0, base)

	stretched := NewScaleBias(4.0, 0.0)
	stretched.SetSourceModule(0, turb)

	banding := NewCurve()
	banding.SetSourceModule(0, stretched)
	_ = banding.AddControlPoint(-1.0, 0.0)
	_ = banding.AddControlPoint(-0.5, -1.0)
	_ = banding.AddControlPoint(0.0, 0.0)
	_ = banding.AddControlPoint(0.5, 1.0)
	_ = banding.AddControlPoint(1.0, 0.0)
	return banding
}

// Granite builds a speckled granite texture from high-frequency Billow
// noise, sharpened by raising its normalized output to a power.
func Granite(seed int32) Module {
	billow := NewBillow(seed)
	billow.Frequency = 8.0
	billow.OctaveCount = 4

	exp := NewExponent(3.0)
	exp.SetSourceModule(0, billow)
	return exp
}

// Wood builds a ring-grained wood texture: concentric Cylinders bands,
// lightly distorted by Turbulence so rings look organic rather than
// perfectly circular, rebiased into [0,1].
func Wood(seed int32, rings float64) Module {
	bands := NewCylinders(rings)

	turb := NewTurbulence(seed, rings*0.3, 2, 0.3)
	turb.SetSourceModule(0, bands)

	bias := NewScaleBias(0.5, 0.5)
	bias.SetSourceModule(0, turb)
	return bias
}

// Clouds builds a soft cloud-coverage texture: a low-frequency Billow
// base combined with a higher-frequency detail layer, thresholded by
// Clamp so coverage controls how much sky shows through.
func Clouds(seed int32, coverage float64) Module {
	base := NewBillow(seed)
	base.Frequency = 0.5
	base.OctaveCount = 4

	detail := NewBillow(seed + 100)
	detail.Frequency = 2.0
	detail.OctaveCount = 2

	detailScaled := NewScaleBias(0.25, 0.0)
	detailScaled.SetSourceModule(0, detail)

	sum := NewAdd()
	sum.SetSourceModule(0, base)
	sum.SetSourceModule(1, detailScaled)

	biased := NewScaleBias(1.0, -coverage)
	biased.SetSourceModule(0, sum)

	clamped := NewClamp(0.0, 1.0)
	clamped.SetSourceModule(0, biased)
	return clamped
}

// Slime builds a mottled, organic texture from Voronoi cells blended
// against low-frequency Perlin noise, producing irregular blobs rather
// than Voronoi's usual sharp cell edges.
func Slime(seed int32) Module {
	cells := NewVoronoi(seed)
	cells.Frequency = 4.0
	cells.EnableDistance = true

	smoother := NewPerlin(seed + 1)
	smoother.Frequency = 2.0
	smoother.OctaveCount = 3

	blend := NewBlend()
	blend.SetSourceModule(0, cells)
	blend.SetSourceModule(1, smoother)
	blend.SetSourceModule(2, smoother)
	return blend
}

// Jade builds a veined, translucent-looking texture: RidgedMulti veins
// selected between two Perlin base tones using the veins themselves as
// the control signal.
func Jade(seed int32) Module {
	veins := NewRidgedMulti(seed)
	veins.Frequency = 3.0

	light := NewPerlin(seed + 1)
	light.Frequency = 1.0
	light.OctaveCount = 3
	lightBias := NewScaleBias(0.3, 0.6)
	lightBias.SetSourceModule(0, light)

	dark := NewPerlin(seed + 2)
	dark.Frequency = 1.0
	dark.OctaveCount = 3
	darkBias := NewScaleBias(0.3, 0.2)
	darkBias.SetSourceModule(0, dark)

	sel := NewSelect(-0.2, 0.2)
	sel.SetSourceModule(0, darkBias)
	sel.SetSourceModule(1, lightBias)
	sel.SetSourceModule(2, veins)
	sel.SetEdgeFalloff(0.15)
	return sel
}

// Sky builds a layered skyscape: soft Billow clouds (the Clouds preset)
// selected against a Perlin-textured blue field, using a separate
// low-frequency Perlin as the control.
func Sky(seed int32) Module {
	clouds := Clouds(seed, 0.4)

	blueField := NewPerlin(seed + 50)
	blueField.Frequency = 0.25
	blueField.OctaveCount = 2
	blueBias := NewScaleBias(0.1, 0.5)
	blueBias.SetSourceModule(0, blueField)

	control := NewPerlin(seed + 51)
	control.Frequency = 0.5
	control.OctaveCount = 3

	sel := NewSelect(-0.1, 0.3)
	sel.SetSourceModule(0, blueBias)
	sel.SetSourceModule(1, clouds)
	sel.SetSourceModule(2, control)
	sel.SetEdgeFalloff(0.2)
	return sel
}
