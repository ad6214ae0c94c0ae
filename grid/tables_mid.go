// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// tables_mid.go — orbit tables of the 350- through 1730-point rules.
//
// Values are the published Lebedev-Laikov generators, kept at full source
// precision. Do not reformat or round them.

package grid

import "github.com/katalvlaran/lebedev/orbit"

// ld0350 is the 350-point rule, exact through degree 31.
var ld0350 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.3006796749453936e-2},
	{Code: orbit.Corners, V: 0.3050627745650771e-2},
	{Code: orbit.DiagonalPlanes, A: 0.7068965463912316, V: 0.1621104600288991e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4794682625712025, V: 0.3005701484901752e-2},
	{Code: orbit.DiagonalPlanes, A: 0.1927533154878019, V: 0.2990992529653774e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6930357961327123, V: 0.2982170644107595e-2},
	{Code: orbit.DiagonalPlanes, A: 0.3608302115520091, V: 0.2721564237310992e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6498486161496169, V: 0.3033513795811141e-2},
	{Code: orbit.CoordinatePlanes, A: 0.1932945013230339, V: 0.3007949555218533e-2},
	{Code: orbit.CoordinatePlanes, A: 0.3800494919899303, V: 0.2881964603055307e-2},
	{Code: orbit.Generic, A: 0.2899558825499574, B: 0.7934537856582316, V: 0.2958357626535696e-2},
	{Code: orbit.Generic, A: 0.9684121455103957e-1, B: 0.8280801506686862, V: 0.3036020026407088e-2},
	{Code: orbit.Generic, A: 0.1833434647041659, B: 0.9074658265305127, V: 0.2832187403926303e-2},
}

// ld0434 is the 434-point rule, exact through degree 35.
var ld0434 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.5265897968224436e-3},
	{Code: orbit.EdgeCenters, V: 0.2548219972002607e-2},
	{Code: orbit.Corners, V: 0.2512317418927307e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6909346307509111, V: 0.2530403801186355e-2},
	{Code: orbit.DiagonalPlanes, A: 0.1774836054609158, V: 0.2014279020918528e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4914342637784746, V: 0.2501725168402936e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6456664707424256, V: 0.2513267174597564e-2},
	{Code: orbit.DiagonalPlanes, A: 0.2861289010307638, V: 0.2302694782227416e-2},
	{Code: orbit.DiagonalPlanes, A: 0.7568084367178018e-1, V: 0.1462495621594614e-2},
	{Code: orbit.DiagonalPlanes, A: 0.3927259763368002, V: 0.2445373437312980e-2},
	{Code: orbit.CoordinatePlanes, A: 0.8818132877794288, V: 0.2417442375638981e-2},
	{Code: orbit.CoordinatePlanes, A: 0.9776428111182649, V: 0.1910951282179532e-2},
	{Code: orbit.Generic, A: 0.2054823696403044, B: 0.8689460322872412, V: 0.2416930044324775e-2},
	{Code: orbit.Generic, A: 0.5905157048925271, B: 0.7999278543857286, V: 0.2512236854563495e-2},
	{Code: orbit.Generic, A: 0.5550152361076807, B: 0.7717462626915901, V: 0.2496644054553086e-2},
	{Code: orbit.Generic, A: 0.9371809858553722, B: 0.3344363145343455, V: 0.2236607760437849e-2},
}

// ld0590 is the 590-point rule, exact through degree 41.
var ld0590 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.3095121295306187e-3},
	{Code: orbit.Corners, V: 0.1852379698597489e-2},
	{Code: orbit.DiagonalPlanes, A: 0.7040954938227469, V: 0.1871790639277744e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6807744066455243, V: 0.1858812585438317e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6372546939258752, V: 0.1852028828296213e-2},
	{Code: orbit.DiagonalPlanes, A: 0.5044419707800358, V: 0.1846715956151242e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4215761784010967, V: 0.1818471778162769e-2},
	{Code: orbit.DiagonalPlanes, A: 0.3317920736472123, V: 0.1749564657281154e-2},
	{Code: orbit.DiagonalPlanes, A: 0.2384736701421887, V: 0.1617210647254411e-2},
	{Code: orbit.DiagonalPlanes, A: 0.1459036449157763, V: 0.1384737234851692e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6095034115507196e-1, V: 0.9764331165051050e-3},
	{Code: orbit.CoordinatePlanes, A: 0.6116843442009876, V: 0.1857161196774078e-2},
	{Code: orbit.CoordinatePlanes, A: 0.3964755348199858, V: 0.1705153996395864e-2},
	{Code: orbit.CoordinatePlanes, A: 0.1724782009907724, V: 0.1300321685886048e-2},
	{Code: orbit.Generic, A: 0.5610263808622060, B: 0.3518280927733519, V: 0.1842866472905286e-2},
	{Code: orbit.Generic, A: 0.4742392842551980, B: 0.2634716655937950, V: 0.1802658934377451e-2},
	{Code: orbit.Generic, A: 0.5984126497885380, B: 0.1816640840360209, V: 0.1849830560443660e-2},
	{Code: orbit.Generic, A: 0.3791035407695563, B: 0.1720795225656878, V: 0.1713904507106709e-2},
	{Code: orbit.Generic, A: 0.2778673190586244, B: 0.8213021581932511e-1, V: 0.1555213603396808e-2},
	{Code: orbit.Generic, A: 0.5033564271075117, B: 0.8999205842074875e-1, V: 0.1802239128008525e-2},
}

// ld0770 is the 770-point rule, exact through degree 47.
var ld0770 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.2192942088181184e-3},
	{Code: orbit.EdgeCenters, V: 0.1436433617319080e-2},
	{Code: orbit.Corners, V: 0.1421940344335877e-2},
	{Code: orbit.DiagonalPlanes, A: 0.5087204410502360e-1, V: 0.6798123511050502e-3},
	{Code: orbit.DiagonalPlanes, A: 0.1228198790178831, V: 0.9913184235294912e-3},
	{Code: orbit.DiagonalPlanes, A: 0.2026890814408786, V: 0.1180207833238949e-2},
	{Code: orbit.DiagonalPlanes, A: 0.2847745156464294, V: 0.1296599602080921e-2},
	{Code: orbit.DiagonalPlanes, A: 0.3656719078978026, V: 0.1365871427428316e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4428264886713469, V: 0.1402988604775325e-2},
	{Code: orbit.DiagonalPlanes, A: 0.5140619627249735, V: 0.1418645563595609e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6306401219166803, V: 0.1421376741851662e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6716883332022612, V: 0.1423996475490962e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6979792685336881, V: 0.1431554042178567e-2},
	{Code: orbit.CoordinatePlanes, A: 0.1446865674195309, V: 0.9254401499865368e-3},
	{Code: orbit.CoordinatePlanes, A: 0.3390263475411216, V: 0.1250239995053509e-2},
	{Code: orbit.CoordinatePlanes, A: 0.5335804651263506, V: 0.1394365843329230e-2},
	{Code: orbit.Generic, A: 0.6944024393349413e-1, B: 0.2355187894242326, V: 0.1127089094671749e-2},
	{Code: orbit.Generic, A: 0.2269004109529460, B: 0.4102182474045730, V: 0.1345753760910670e-2},
	{Code: orbit.Generic, A: 0.8025574607775339e-1, B: 0.6214302417481605, V: 0.1424957283316783e-2},
	{Code: orbit.Generic, A: 0.1467999527896572, B: 0.3245284345717394, V: 0.1261523341237750e-2},
	{Code: orbit.Generic, A: 0.1571507769824727, B: 0.5224482189696630, V: 0.1392547106052696e-2},
	{Code: orbit.Generic, A: 0.2365702993157246, B: 0.6017546634089558, V: 0.1418761677877656e-2},
	{Code: orbit.Generic, A: 0.7714815866765732e-1, B: 0.4346575516141163, V: 0.1338366684479554e-2},
	{Code: orbit.Generic, A: 0.3062936666210730, B: 0.4908826589037616, V: 0.1393700862676131e-2},
	{Code: orbit.Generic, A: 0.3822477379524787, B: 0.5648768149099500, V: 0.1415914757466932e-2},
}

// ld0974 is the 974-point rule, exact through degree 53.
var ld0974 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.1438294190527431e-3},
	{Code: orbit.Corners, V: 0.1125772288287004e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4292963545341347e-1, V: 0.4948029341949241e-3},
	{Code: orbit.DiagonalPlanes, A: 0.1051426854086404, V: 0.7357990109125470e-3},
	{Code: orbit.DiagonalPlanes, A: 0.1750024867623087, V: 0.8889132771304384e-3},
	{Code: orbit.DiagonalPlanes, A: 0.2477653379650257, V: 0.9888347838921435e-3},
	{Code: orbit.DiagonalPlanes, A: 0.3206567123955957, V: 0.1053299681709471e-2},
	{Code: orbit.DiagonalPlanes, A: 0.3916520749849983, V: 0.1092778807014578e-2},
	{Code: orbit.DiagonalPlanes, A: 0.4590825874187624, V: 0.1114389394063227e-2},
	{Code: orbit.DiagonalPlanes, A: 0.5214563888415861, V: 0.1123724788051555e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6253170244654199, V: 0.1125239325243814e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6637926744523170, V: 0.1126153271815905e-2},
	{Code: orbit.DiagonalPlanes, A: 0.6910410398498301, V: 0.1130286931123841e-2},
	{Code: orbit.DiagonalPlanes, A: 0.7052907007457760, V: 0.1134986534363955e-2},
	{Code: orbit.CoordinatePlanes, A: 0.1236686762657990, V: 0.6823367927109931e-3},
	{Code: orbit.CoordinatePlanes, A: 0.2940777114468387, V: 0.9454158160447096e-3},
	{Code: orbit.CoordinatePlanes, A: 0.4697753849207649, V: 0.1074429975385679e-2},
	{Code: orbit.CoordinatePlanes, A: 0.6334563241139567, V: 0.1129300086569132e-2},
	{Code: orbit.Generic, A: 0.5974048614181342e-1, B: 0.2029128752777523, V: 0.8436884500901954e-3},
	{Code: orbit.Generic, A: 0.1375760408473636, B: 0.4602621942484054, V: 0.1075255720448885e-2},
	{Code: orbit.Generic, A: 0.3391016526336286, B: 0.5030673999662036, V: 0.1108577236864462e-2},
	{Code: orbit.Generic, A: 0.1271675191439820, B: 0.2817606422442134, V: 0.9566475323783357e-3},
	{Code: orbit.Generic, A: 0.2693120740413512, B: 0.4331561291720157, V: 0.1080663250717391e-2},
	{Code: orbit.Generic, A: 0.1419786452601918, B: 0.6256167358580814, V: 0.1126797131196295e-2},
	{Code: orbit.Generic, A: 0.6709284600738255e-1, B: 0.3798395216859157, V: 0.1022568715358061e-2},
	{Code: orbit.Generic, A: 0.7057738183256172e-1, B: 0.5517505421423520, V: 0.1108960267713108e-2},
	{Code: orbit.Generic, A: 0.2783888477882155, B: 0.6029619156159187, V: 0.1122790653435766e-2},
	{Code: orbit.Generic, A: 0.1979578938917407, B: 0.3589606329589096, V: 0.1032401847117460e-2},
	{Code: orbit.Generic, A: 0.2087307061103274, B: 0.5348666438135476, V: 0.1107249382283854e-2},
	{Code: orbit.Generic, A: 0.4055122137872836, B: 0.5674997546074373, V: 0.1121780048519972e-2},
}

// ld1202 is the 1202-point rule, exact through degree 59.
var ld1202 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.1105189233267572e-3},
	{Code: orbit.EdgeCenters, V: 0.9205232738090741e-3},
	{Code: orbit.Corners, V: 0.9133159786443561e-3},
	{Code: orbit.DiagonalPlanes, A: 0.3712636449657089e-1, V: 0.3690421898017899e-3},
	{Code: orbit.DiagonalPlanes, A: 0.9140060412262223e-1, V: 0.5603990928680660e-3},
	{Code: orbit.DiagonalPlanes, A: 0.1531077852469906, V: 0.6865297629282609e-3},
	{Code: orbit.DiagonalPlanes, A: 0.2180928891660612, V: 0.7720338551145630e-3},
	{Code: orbit.DiagonalPlanes, A: 0.2839874532200175, V: 0.8301545958894795e-3},
	{Code: orbit.DiagonalPlanes, A: 0.3491177600963764, V: 0.8686692550179628e-3},
	{Code: orbit.DiagonalPlanes, A: 0.4121431461444309, V: 0.8927076285846890e-3},
	{Code: orbit.DiagonalPlanes, A: 0.4718993627149127, V: 0.9060820238568219e-3},
	{Code: orbit.DiagonalPlanes, A: 0.5273145452842337, V: 0.9119777254940867e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6209475332444019, V: 0.9128720138604181e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6569722711857291, V: 0.9130714935691735e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6841788309070143, V: 0.9152873784554116e-3},
	{Code: orbit.DiagonalPlanes, A: 0.7012604330123631, V: 0.9187436274321654e-3},
	{Code: orbit.CoordinatePlanes, A: 0.1072382215478166, V: 0.5176977312965694e-3},
	{Code: orbit.CoordinatePlanes, A: 0.2582068959496968, V: 0.7331143682101417e-3},
	{Code: orbit.CoordinatePlanes, A: 0.4172752955306717, V: 0.8463232836379928e-3},
	{Code: orbit.CoordinatePlanes, A: 0.5700366911792503, V: 0.9031122694253992e-3},
	{Code: orbit.Generic, A: 0.9827986018263947, B: 0.1771774022615325, V: 0.6485778453163257e-3},
	{Code: orbit.Generic, A: 0.9624249230326228, B: 0.2475716463426288, V: 0.7435030910982369e-3},
	{Code: orbit.Generic, A: 0.9402007994128811, B: 0.3354616289066489, V: 0.7998527891839054e-3},
	{Code: orbit.Generic, A: 0.9320822040143202, B: 0.3173615246611977, V: 0.8101731497468018e-3},
	{Code: orbit.Generic, A: 0.9043674199393299, B: 0.4090268427085357, V: 0.8483389574594331e-3},
	{Code: orbit.Generic, A: 0.8912407560074747, B: 0.3854291150669224, V: 0.8556299257311812e-3},
	{Code: orbit.Generic, A: 0.8676435628462708, B: 0.4932221184851285, V: 0.8803208679738260e-3},
	{Code: orbit.Generic, A: 0.8581979986041619, B: 0.4785320675922435, V: 0.8811048182425720e-3},
	{Code: orbit.Generic, A: 0.8396753624049856, B: 0.4507422593157064, V: 0.8850282341265444e-3},
	{Code: orbit.Generic, A: 0.8165288564022188, B: 0.5632123020762100, V: 0.9021342299040653e-3},
	{Code: orbit.Generic, A: 0.8015469370783529, B: 0.5434303569693900, V: 0.9010091677105086e-3},
	{Code: orbit.Generic, A: 0.7773563069070351, B: 0.5123518486419871, V: 0.9022692938426915e-3},
	{Code: orbit.Generic, A: 0.7661621213900394, B: 0.6394279634749102, V: 0.9158016174693465e-3},
	{Code: orbit.Generic, A: 0.7553584143533510, B: 0.6269805509024392, V: 0.9131578003189435e-3},
	{Code: orbit.Generic, A: 0.7344305757559503, B: 0.6031161693096310, V: 0.9107813579482705e-3},
	{Code: orbit.Generic, A: 0.7043837184021765, B: 0.5693702498468441, V: 0.9105760258970126e-3},
}

// ld1454 is the 1454-point rule, exact through degree 65.
var ld1454 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.7777160743261247e-4},
	{Code: orbit.Corners, V: 0.7557646413004701e-3},
	{Code: orbit.DiagonalPlanes, A: 0.3229290663413854e-1, V: 0.2841633806090617e-3},
	{Code: orbit.DiagonalPlanes, A: 0.8036733271462222e-1, V: 0.4374419127053555e-3},
	{Code: orbit.DiagonalPlanes, A: 0.1354289960531653, V: 0.5417174740872172e-3},
	{Code: orbit.DiagonalPlanes, A: 0.1938963861114426, V: 0.6148000891358593e-3},
	{Code: orbit.DiagonalPlanes, A: 0.2537343715011275, V: 0.6664394485800705e-3},
	{Code: orbit.DiagonalPlanes, A: 0.3135251434752570, V: 0.7025039356923220e-3},
	{Code: orbit.DiagonalPlanes, A: 0.3721558339375338, V: 0.7268511789249627e-3},
	{Code: orbit.DiagonalPlanes, A: 0.4286809575195696, V: 0.7422637534208629e-3},
	{Code: orbit.DiagonalPlanes, A: 0.4822510128282994, V: 0.7509545035841214e-3},
	{Code: orbit.DiagonalPlanes, A: 0.5320679333566263, V: 0.7548535057718401e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6172998195394274, V: 0.7554088969774001e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6510679849127481, V: 0.7553147174442808e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6777315251687360, V: 0.7564767653292297e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6963109410648741, V: 0.7587991808518730e-3},
	{Code: orbit.DiagonalPlanes, A: 0.7058935009831749, V: 0.7608261832033027e-3},
	{Code: orbit.CoordinatePlanes, A: 0.9955546194091857, V: 0.4021680447874916e-3},
	{Code: orbit.CoordinatePlanes, A: 0.9734115901794209, V: 0.5804871793945964e-3},
	{Code: orbit.CoordinatePlanes, A: 0.9275693732388626, V: 0.6792151955945159e-3},
	{Code: orbit.CoordinatePlanes, A: 0.8568022422795103, V: 0.7336741211286294e-3},
	{Code: orbit.CoordinatePlanes, A: 0.7623495553719372, V: 0.7581866300989608e-3},
	{Code: orbit.Generic, A: 0.5707522908892223, B: 0.4387028039889501, V: 0.7538257859800743e-3},
	{Code: orbit.Generic, A: 0.5196463388403083, B: 0.3858908414762617, V: 0.7483517247053123e-3},
	{Code: orbit.Generic, A: 0.4646337531215351, B: 0.3301937372343854, V: 0.7371763661112059e-3},
	{Code: orbit.Generic, A: 0.4063901697557691, B: 0.2725423573563777, V: 0.7183448895756934e-3},
	{Code: orbit.Generic, A: 0.3456329466643087, B: 0.2139510237495250, V: 0.6895815529822191e-3},
	{Code: orbit.Generic, A: 0.2831395121050332, B: 0.1555922309786647, V: 0.6480105801792886e-3},
	{Code: orbit.Generic, A: 0.2197682022925330, B: 0.9892878979686097e-1, V: 0.5897558896594636e-3},
	{Code: orbit.Generic, A: 0.1564696098650355, B: 0.4598642910675510e-1, V: 0.5095708849247346e-3},
	{Code: orbit.Generic, A: 0.6027356673721295, B: 0.3376625140173426, V: 0.7536906428909755e-3},
	{Code: orbit.Generic, A: 0.5496032320255096, B: 0.2822301309727988, V: 0.7472505965575118e-3},
	{Code: orbit.Generic, A: 0.4921707755234567, B: 0.2248632342592540, V: 0.7343017132279698e-3},
	{Code: orbit.Generic, A: 0.4309422998598483, B: 0.1666224723456479, V: 0.7130871582177445e-3},
	{Code: orbit.Generic, A: 0.3664108182313672, B: 0.1086964901822169, V: 0.6817022032112776e-3},
	{Code: orbit.Generic, A: 0.2990189057758436, B: 0.5251989784120085e-1, V: 0.6380941145604121e-3},
	{Code: orbit.Generic, A: 0.6268724013144998, B: 0.2297523657550023, V: 0.7550381377920310e-3},
	{Code: orbit.Generic, A: 0.5707324144834607, B: 0.1723080607093800, V: 0.7478646640144802e-3},
	{Code: orbit.Generic, A: 0.5096360901960365, B: 0.1140238465390513, V: 0.7335918720601220e-3},
	{Code: orbit.Generic, A: 0.4438729938312456, B: 0.5611522095882537e-1, V: 0.7110120527658118e-3},
	{Code: orbit.Generic, A: 0.6419978471082389, B: 0.1164174423140873, V: 0.7571363978689501e-3},
	{Code: orbit.Generic, A: 0.5817218061802611, B: 0.5797589531445219e-1, V: 0.7489908329079234e-3},
}

// ld1730 is the 1730-point rule, exact through degree 71.
var ld1730 = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.6309049437420976e-4},
	{Code: orbit.EdgeCenters, V: 0.6398287705571748e-3},
	{Code: orbit.Corners, V: 0.6357185073530720e-3},
	{Code: orbit.DiagonalPlanes, A: 0.2860923126194662e-1, V: 0.2221207162188168e-3},
	{Code: orbit.DiagonalPlanes, A: 0.7142556767711522e-1, V: 0.3475784022286848e-3},
	{Code: orbit.DiagonalPlanes, A: 0.1209199540995559, V: 0.4350742443589804e-3},
	{Code: orbit.DiagonalPlanes, A: 0.1738673106594379, V: 0.4978569136522127e-3},
	{Code: orbit.DiagonalPlanes, A: 0.2284645438467734, V: 0.5435036221998053e-3},
	{Code: orbit.DiagonalPlanes, A: 0.2834807671701512, V: 0.5765913388219542e-3},
	{Code: orbit.DiagonalPlanes, A: 0.3379680145467339, V: 0.6001200359226003e-3},
	{Code: orbit.DiagonalPlanes, A: 0.3911355454819537, V: 0.6162178172717512e-3},
	{Code: orbit.DiagonalPlanes, A: 0.4422860353001403, V: 0.6265218152438485e-3},
	{Code: orbit.DiagonalPlanes, A: 0.4907781568726057, V: 0.6323987160974212e-3},
	{Code: orbit.DiagonalPlanes, A: 0.5360006153211468, V: 0.6350767851540569e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6142105973596603, V: 0.6354362775297107e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6459300387977504, V: 0.6352302462706235e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6718056125089225, V: 0.6358117881417972e-3},
	{Code: orbit.DiagonalPlanes, A: 0.6910888533186254, V: 0.6373101590310117e-3},
	{Code: orbit.DiagonalPlanes, A: 0.7030467416823252, V: 0.6390428961368665e-3},
	{Code: orbit.CoordinatePlanes, A: 0.8354951166354646e-1, V: 0.3186913449946576e-3},
	{Code: orbit.CoordinatePlanes, A: 0.2050143009099486, V: 0.4678028558591711e-3},
	{Code: orbit.CoordinatePlanes, A: 0.3370208290706637, V: 0.5538829697598626e-3},
	{Code: orbit.CoordinatePlanes, A: 0.4689051484233963, V: 0.6044475907190476e-3},
	{Code: orbit.CoordinatePlanes, A: 0.5939400424557334, V: 0.6313575103509012e-3},
	{Code: orbit.Generic, A: 0.1394983311832261, B: 0.4097581162050343e-1, V: 0.4078626431855630e-3},
	{Code: orbit.Generic, A: 0.1967999180485014, B: 0.8851987391293348e-1, V: 0.4759933057812725e-3},
	{Code: orbit.Generic, A: 0.2546183732548967, B: 0.1397680182969819, V: 0.5268151186413440e-3},
	{Code: orbit.Generic, A: 0.3121281074713875, B: 0.1929452542226526, V: 0.5643048560507316e-3},
	{Code: orbit.Generic, A: 0.3685981078502492, B: 0.2467898337061562, V: 0.5914501076613073e-3},
	{Code: orbit.Generic, A: 0.4233760321547856, B: 0.3003104124785409, V: 0.6104561257874195e-3},
	{Code: orbit.Generic, A: 0.4758671236059246, B: 0.3526684328175033, V: 0.6230252860707806e-3},
	{Code: orbit.Generic, A: 0.5255178579796463, B: 0.4031134861145713, V: 0.6305618761760796e-3},
	{Code: orbit.Generic, A: 0.5718025633734589, B: 0.4509426448342351, V: 0.6343092767597889e-3},
	{Code: orbit.Generic, A: 0.2686927772723415, B: 0.4711322502423248e-1, V: 0.5176268945737826e-3},
	{Code: orbit.Generic, A: 0.3306006819904809, B: 0.9784487303942695e-1, V: 0.5564840313313692e-3},
	{Code: orbit.Generic, A: 0.3904906850594983, B: 0.1505395810025273, V: 0.5856426671038980e-3},
	{Code: orbit.Generic, A: 0.4479957951904390, B: 0.2039728156296050, V: 0.6066386925777091e-3},
	{Code: orbit.Generic, A: 0.5027076848919780, B: 0.2571529941121107, V: 0.6208824962234458e-3},
	{Code: orbit.Generic, A: 0.5542087392260217, B: 0.3092191375815670, V: 0.6296314297822907e-3},
	{Code: orbit.Generic, A: 0.6020850887375187, B: 0.3593807506130276, V: 0.6340423756791859e-3},
	{Code: orbit.Generic, A: 0.4019851409179594, B: 0.5063389934378671e-1, V: 0.5829627677107342e-3},
	{Code: orbit.Generic, A: 0.4635614567449800, B: 0.1032422269160612, V: 0.6048693376081110e-3},
	{Code: orbit.Generic, A: 0.5215860931591575, B: 0.1566322094006254, V: 0.6202362317732461e-3},
	{Code: orbit.Generic, A: 0.5758202499099271, B: 0.2098082827491099, V: 0.6299005328403779e-3},
	{Code: orbit.Generic, A: 0.6259893683876795, B: 0.2618824114553391, V: 0.6347722390609353e-3},
	{Code: orbit.Generic, A: 0.5313795124811891, B: 0.5263245019338556e-1, V: 0.6203778981238834e-3},
	{Code: orbit.Generic, A: 0.5893317955931995, B: 0.1061059730982005, V: 0.6308414671239979e-3},
	{Code: orbit.Generic, A: 0.6426246321215801, B: 0.1594171564034221, V: 0.6362706466959498e-3},
	{Code: orbit.Generic, A: 0.6511904367376113, B: 0.5354789536565540e-1, V: 0.6375414170333233e-3},
}
