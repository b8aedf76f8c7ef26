package colorspace

import "math"

// pow25To7 is 25^7, precomputed because it recurs twice in the formula.
const pow25To7 = 6103515625.0

// CIEDE2000 computes the perceptual color difference between two Lab
// colors per Sharma, Wu & Dalal (2005). The result is non-negative and
// zero iff the two colors are identical.
func CIEDE2000(c1, c2 Color) float64 {
	const deg180 = math.Pi
	const deg360 = 2 * math.Pi

	// Step 1: C', h' in the rotated a* axis.
	c1c := math.Hypot(c1.a, c1.b)
	c2c := math.Hypot(c2.a, c2.b)
	barC := (c1c + c2c) / 2

	g := 0.5 * (1 - math.Sqrt(math.Pow(barC, 7)/(math.Pow(barC, 7)+pow25To7)))
	a1p := (1 + g) * c1.a
	a2p := (1 + g) * c2.a

	c1p := math.Hypot(a1p, c1.b)
	c2p := math.Hypot(a2p, c2.b)

	h1p := hueAngle(c1.b, a1p, deg360)
	h2p := hueAngle(c2.b, a2p, deg360)

	// Step 2: deltas.
	deltaLp := c2.l - c1.l
	deltaCp := c2p - c1p

	var deltahp float64
	cProduct := c1p * c2p
	if cProduct != 0 {
		deltahp = h2p - h1p
		if deltahp < -deg180 {
			deltahp += deg360
		} else if deltahp > deg180 {
			deltahp -= deg360
		}
	}
	deltaHp := 2 * math.Sqrt(cProduct) * math.Sin(deltahp/2)

	// Step 3: means and weighting terms.
	barLp := (c1.l + c2.l) / 2
	barCp := (c1p + c2p) / 2

	var barhp float64
	hSum := h1p + h2p
	switch {
	case cProduct == 0:
		barhp = hSum
	case math.Abs(h1p-h2p) <= deg180:
		barhp = hSum / 2
	case hSum < deg360:
		barhp = (hSum + deg360) / 2
	default:
		barhp = (hSum - deg360) / 2
	}

	t := 1 - 0.17*math.Cos(barhp-deg(30)) +
		0.24*math.Cos(2*barhp) +
		0.32*math.Cos(3*barhp+deg(6)) -
		0.20*math.Cos(4*barhp-deg(63))

	deltaTheta := deg(30) * math.Exp(-math.Pow((barhp-deg(275))/deg(25), 2))
	rc := 2 * math.Sqrt(math.Pow(barCp, 7)/(math.Pow(barCp, 7)+pow25To7))
	sl := 1 + (0.015*math.Pow(barLp-50, 2))/math.Sqrt(20+math.Pow(barLp-50, 2))
	sc := 1 + 0.045*barCp
	sh := 1 + 0.015*barCp*t
	rt := -math.Sin(2*deltaTheta) * rc

	const kL, kC, kH = 1.0, 1.0, 1.0

	termL := deltaLp / (kL * sl)
	termC := deltaCp / (kC * sc)
	termH := deltaHp / (kH * sh)

	return math.Sqrt(termL*termL + termC*termC + termH*termH + rt*termC*termH)
}

// hueAngle returns atan2(b, aPrime) normalized to [0, full).
func hueAngle(b, aPrime, full float64) float64 {
	if b == 0 && aPrime == 0 {
		return 0
	}
	angle := math.Atan2(b, aPrime)
	if angle < 0 {
		angle += full
	}
	return angle
}

func deg(d float64) float64 {
	return d * math.Pi / 180
}
