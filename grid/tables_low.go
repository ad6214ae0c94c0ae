// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// tables_low.go — orbit tables of the 6- through 302-point rules.
//
// Values are the published Lebedev-Laikov generators, kept at full source
// precision. Do not reformat or round them.

package grid

import "github.com/katalvlaran/lebedev/orbit"

// ld0006 is the 6-point rule, exact through degree 3.
var ld0006 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.1666666666666667},
}

// ld0014 is the 14-point rule, exact through degree 5.
var ld0014 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.6666666666666667e-1},
	{Code: orbit.Corners, V: 0.7500000000000000e-1},
}

// ld0026 is the 26-point rule, exact through degree 7.
var ld0026 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.4761904761904762e-1},
	{Code: orbit.EdgeCenters, V: 0.3809523809523810e-1},
	{Code: orbit.Corners, V: 0.3214285714285714e-1},
}

// ld0038 is the 38-point rule, exact through degree 9.
var ld0038 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.9523809523809524e-2},
	{Code: orbit.Corners, V: 0.3214285714285714e-1},
	{Code: orbit.CoordinatePlanes, A: 0.4597008433809831, V: 0.2857142857142857e-1},
}

// ld0050 is the 50-point rule, exact through degree 11.
var ld0050 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.1269841269841270e-1},
	{Code: orbit.EdgeCenters, V: 0.2257495590828924e-1},
	{Code: orbit.Corners, V: 0.2109375000000000e-1},
	{Code: orbit.DiagonalPlanes, A: 0.3015113445777636, V: 0.2017333553791887e-1},
}

// ld0074 is the 74-point rule, exact through degree 13.
var ld0074 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.5130671797338464e-3},
	{Code: orbit.EdgeCenters, V: 0.1660406956574204e-1},
	{Code: orbit.Corners, V: -0.2958603896103896e-1},
	{Code: orbit.DiagonalPlanes, A: 0.4803844614152614, V: 0.2657620708215946e-1},
	{Code: orbit.CoordinatePlanes, A: 0.3207726489807764, V: 0.1652217099371571e-1},
}

// ld0086 is the 86-point rule, exact through degree 15.
var ld0086 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.1154401154401154e-1},
	{Code: orbit.Corners, V: 0.1194390908585628e-1},
	{Code: orbit.DiagonalPlanes, A: 0.3696028464541502, V: 0.1111055571060340e-1},
	{Code: orbit.DiagonalPlanes, A: 0.6943540066026664, V: 0.1187650129453714e-1},
	{Code: orbit.CoordinatePlanes, A: 0.3742430390903412, V: 0.1181230374690448e-1},
}

// ld0110 is the 110-point rule, exact through degree 17.
var ld0110 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.3828270494937162e-2},
	{Code: orbit.Corners, V: 0.9793737512487512e-2},
	{Code: orbit.DiagonalPlanes, A: 0.1851156353447362, V: 0.8211737283191111e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6904210483822922, V: 0.9942814891178103e-2},
	{Code: orbit.DiagonalPlanes, A: 0.3956894730559419, V: 0.9595471336070963e-2},
	{Code: orbit.CoordinatePlanes, A: 0.4783690288121502, V: 0.9694996361663028e-2},
}

// ld0146 is the 146-point rule, exact through degree 19.
var ld0146 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.5996313688621381e-3},
	{Code: orbit.EdgeCenters, V: 0.7372999718620756e-2},
	{Code: orbit.Corners, V: 0.7210515360144488e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6764410400114264, V: 0.7116355493117555e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4174961227965453, V: 0.6753829486314477e-2},
	{Code: orbit.DiagonalPlanes, A: 0.1574676672039082, V: 0.7574394159054034e-2},
	{Code: orbit.Generic, A: 0.1403553811713183, B: 0.4493328323269557, V: 0.6991087353303262e-2},
}

// ld0170 is the 170-point rule, exact through degree 21.
var ld0170 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.5544842902037365e-2},
	{Code: orbit.EdgeCenters, V: 0.6071332770670752e-2},
	{Code: orbit.Corners, V: 0.6383674773515093e-2},
	{Code: orbit.DiagonalPlanes, A: 0.2551252621114134, V: 0.5183387587747790e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6743601460362766, V: 0.6317929009813725e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4318910696719410, V: 0.6201670006589077e-2},
	{Code: orbit.CoordinatePlanes, A: 0.2613931360335988, V: 0.5477143385137348e-2},
	{Code: orbit.Generic, A: 0.4990453161796037, B: 0.1446630744325115, V: 0.5968383987681156e-2},
}

// ld0194 is the 194-point rule, exact through degree 23.
var ld0194 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.1782340447244611e-2},
	{Code: orbit.EdgeCenters, V: 0.5716905949977102e-2},
	{Code: orbit.Corners, V: 0.5573383178848738e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6712973442695226, V: 0.5608704082587997e-2},
	{Code: orbit.DiagonalPlanes, A: 0.2892465627575439, V: 0.5158237711805383e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4446933178717437, V: 0.5518771467273614e-2},
	{Code: orbit.DiagonalPlanes, A: 0.1299335447650067, V: 0.4106777028169394e-2},
	{Code: orbit.CoordinatePlanes, A: 0.3457702197611283, V: 0.5051846064614808e-2},
	{Code: orbit.Generic, A: 0.1590417105383530, B: 0.8360360154824589, V: 0.5530248916233094e-2},
}

// ld0230 is the 230-point rule, exact through degree 25.
var ld0230 = []orbit.Orbit{
	{Code: orbit.Axes, V: -0.5522639919727325e-1},
	{Code: orbit.Corners, V: 0.4450274607445226e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4492044687397611, V: 0.4496841067921404e-2},
	{Code: orbit.DiagonalPlanes, A: 0.2520419490210201, V: 0.5049153450478750e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6981906658447242, V: 0.3976408018051883e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6587405243460960, V: 0.4401400650381014e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4038544050097660e-1, V: 0.1724544350544401e-1},
	{Code: orbit.CoordinatePlanes, A: 0.5823842309715585, V: 0.4231083095357343e-2},
	{Code: orbit.CoordinatePlanes, A: 0.3545877390518688, V: 0.5198069864064399e-2},
	{Code: orbit.Generic, A: 0.2272181808998187, B: 0.4864661535886647, V: 0.4695720972568883e-2},
}

// ld0266 is the 266-point rule, exact through degree 27.
var ld0266 = []orbit.Orbit{
	{Code: orbit.Axes, V: -0.1313769127326952e-2},
	{Code: orbit.EdgeCenters, V: -0.2522728704859336e-2},
	{Code: orbit.Corners, V: 0.4186853881700583e-2},
	{Code: orbit.DiagonalPlanes, A: 0.7039373391585475, V: 0.5315167977810885e-2},
	{Code: orbit.DiagonalPlanes, A: 0.1012526248572414, V: 0.4047142377086219e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4647448726420539, V: 0.4112482394406990e-2},
	{Code: orbit.DiagonalPlanes, A: 0.3277420654971629, V: 0.3595584899758782e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6620338663699974, V: 0.4256131351428158e-2},
	{Code: orbit.CoordinatePlanes, A: 0.8506508083520399, V: 0.4229582700647240e-2},
	{Code: orbit.Generic, A: 0.3233484542692899, B: 0.1153112011009701, V: 0.4080914225780505e-2},
	{Code: orbit.Generic, A: 0.2314790158712601, B: 0.5244939240922365, V: 0.4071467593830964e-2},
}

// ld0302 is the 302-point rule, exact through degree 29.
var ld0302 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.8545911725128148e-3},
	{Code: orbit.Corners, V: 0.3599119285025571e-2},
	{Code: orbit.DiagonalPlanes, A: 0.3515640345570105, V: 0.3449788424305883e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6566329410219612, V: 0.3604822601419882e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4729054132581005, V: 0.3576729661743367e-2},
	{Code: orbit.DiagonalPlanes, A: 0.9618308522614784e-1, V: 0.2352101413689164e-2},
	{Code: orbit.DiagonalPlanes, A: 0.2219645236294178, V: 0.3108953122413675e-2},
	{Code: orbit.DiagonalPlanes, A: 0.7011766416089545, V: 0.3650045807677255e-2},
	{Code: orbit.CoordinatePlanes, A: 0.2644152887060663, V: 0.2982344963171804e-2},
	{Code: orbit.CoordinatePlanes, A: 0.5718955891878961, V: 0.3600820932216460e-2},
	{Code: orbit.Generic, A: 0.2510034751770465, B: 0.8000727494073952, V: 0.3571540554273387e-2},
	{Code: orbit.Generic, A: 0.1233548532583327, B: 0.4127724083168531, V: 0.3392312205006170e-2},
}
