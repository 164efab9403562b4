package broadvoice

// Tables for the 16 kHz (32 kbit/s) variant.

// High-pass pre-filter numerator, 2nd-order Butterworth at 100 Hz.
var bv32HPFNum = [...]float64{
	0.97261390, -1.94522780, 0.97261390,
}

// High-pass pre-filter denominator.
var bv32HPFDen = [...]float64{
	1.00000000, -1.94447766, 0.94597794,
}

// Pitch decimation low-pass numerator, 4th-order Butterworth at 800 Hz.
var bv32DecimNum = [...]float64{
	0.00041660, 0.00166640, 0.00249960, 0.00166640, 0.00041660,
}

// Pitch decimation low-pass denominator.
var bv32DecimDen = [...]float64{
	1.00000000, -3.18063855, 3.86119435, -2.11215536, 0.43826514,
}

// Asymmetric LPC analysis window (320 samples).
var bv32LPCWindow = [...]float64{
	0.00000787, 0.00007081, 0.00019669, 0.00038548, 0.00063717, 0.00095172, 0.00132910, 0.00176925,
	0.00227213, 0.00283766, 0.00346577, 0.00415639, 0.00490944, 0.00572481, 0.00660240, 0.00754210,
	0.00854380, 0.00960736, 0.01073266, 0.01191955, 0.01316788, 0.01447750, 0.01584824, 0.01727993,
	0.01877238, 0.02032542, 0.02193884, 0.02361244, 0.02534601, 0.02713934, 0.02899219, 0.03090433,
	0.03287553, 0.03490553, 0.03699408, 0.03914092, 0.04134578, 0.04360837, 0.04592841, 0.04830562,
	0.05073969, 0.05323031, 0.05577718, 0.05837997, 0.06103835, 0.06375200, 0.06652056, 0.06934369,
	0.07222103, 0.07515222, 0.07813690, 0.08117469, 0.08426519, 0.08740804, 0.09060282, 0.09384914,
	0.09714659, 0.10049476, 0.10389321, 0.10734153, 0.11083929, 0.11438603, 0.11798131, 0.12162469,
	0.12531570, 0.12905387, 0.13283875, 0.13666984, 0.14054667, 0.14446875, 0.14843559, 0.15244669,
	0.15650154, 0.16059963, 0.16474044, 0.16892346, 0.17314816, 0.17741401, 0.18172046, 0.18606698,
	0.19045303, 0.19487803, 0.19934145, 0.20384272, 0.20838127, 0.21295654, 0.21756793, 0.22221488,
	0.22689680, 0.23161310, 0.23636319, 0.24114647, 0.24596233, 0.25081017, 0.25568938, 0.26059935,
	0.26553945, 0.27050907, 0.27550758, 0.28053435, 0.28558874, 0.29067013, 0.29577787, 0.30091132,
	0.30606983, 0.31125276, 0.31645944, 0.32168923, 0.32694147, 0.33221549, 0.33751064, 0.34282624,
	0.34816163, 0.35351613, 0.35888907, 0.36427978, 0.36968757, 0.37511176, 0.38055168, 0.38600663,
	0.39147594, 0.39695890, 0.40245484, 0.40796306, 0.41348286, 0.41901355, 0.42455444, 0.43010483,
	0.43566402, 0.44123130, 0.44680598, 0.45238736, 0.45797474, 0.46356740, 0.46916465, 0.47476578,
	0.48037009, 0.48597687, 0.49158542, 0.49719502, 0.50280498, 0.50841458, 0.51402313, 0.51962991,
	0.52523422, 0.53083535, 0.53643260, 0.54202526, 0.54761264, 0.55319402, 0.55876870, 0.56433598,
	0.56989517, 0.57544556, 0.58098645, 0.58651714, 0.59203694, 0.59754516, 0.60304110, 0.60852406,
	0.61399337, 0.61944832, 0.62488824, 0.63031243, 0.63572022, 0.64111093, 0.64648387, 0.65183837,
	0.65717376, 0.66248936, 0.66778451, 0.67305853, 0.67831077, 0.68354056, 0.68874724, 0.69393017,
	0.69908868, 0.70422213, 0.70932987, 0.71441126, 0.71946565, 0.72449242, 0.72949093, 0.73446055,
	0.73940065, 0.74431062, 0.74918983, 0.75403767, 0.75885353, 0.76363681, 0.76838690, 0.77310320,
	0.77778512, 0.78243207, 0.78704346, 0.79161873, 0.79615728, 0.80065855, 0.80512197, 0.80954697,
	0.81393302, 0.81827954, 0.82258599, 0.82685184, 0.83107654, 0.83525956, 0.83940037, 0.84349846,
	0.84755331, 0.85156441, 0.85553125, 0.85945333, 0.86333016, 0.86716125, 0.87094613, 0.87468430,
	0.87837531, 0.88201869, 0.88561397, 0.88916071, 0.89265847, 0.89610679, 0.89950524, 0.90285341,
	0.90615086, 0.90939718, 0.91259196, 0.91573481, 0.91882531, 0.92186310, 0.92484778, 0.92777897,
	0.93065631, 0.93347944, 0.93624800, 0.93896165, 0.94162003, 0.94422282, 0.94676969, 0.94926031,
	0.95169438, 0.95407159, 0.95639163, 0.95865422, 0.96085908, 0.96300592, 0.96509447, 0.96712447,
	0.96909567, 0.97100781, 0.97286066, 0.97465399, 0.97638756, 0.97806116, 0.97967458, 0.98122762,
	0.98272007, 0.98415176, 0.98552250, 0.98683212, 0.98808045, 0.98926734, 0.99039264, 0.99145620,
	0.99245790, 0.99339760, 0.99427519, 0.99509056, 0.99584361, 0.99653423, 0.99716234, 0.99772787,
	0.99823075, 0.99867090, 0.99904828, 0.99936283, 0.99961452, 0.99980331, 0.99992919, 0.99999213,
	0.99980724, 0.99826561, 0.99518473, 0.99056934, 0.98442657, 0.97676588, 0.96759909, 0.95694034,
	0.94480605, 0.93121493, 0.91618796, 0.89974828, 0.88192126, 0.86273439, 0.84221723, 0.82040144,
	0.79732065, 0.77301045, 0.74750833, 0.72085360, 0.69308736, 0.66425244, 0.63439328, 0.60355594,
	0.57178796, 0.53913832, 0.50565737, 0.47139674, 0.43640924, 0.40074883, 0.36447050, 0.32763018,
	0.29028468, 0.25249158, 0.21430915, 0.17579628, 0.13701234, 0.09801714, 0.05887080, 0.01963369,
}

// Autocorrelation lag window; entry 0 is the white noise correction factor.
var bv32LagWindow = [...]float64{
	1.00010000, 0.99987664, 0.99950664,
	0.99889029, 0.99802803, 0.99692050,
	0.99556853, 0.99397310, 0.99213541,
}

// Long-term mean of the LSP vector (normalized frequency).
var bv32LSPMean = [...]float64{
	0.03420000, 0.08610000, 0.17050000, 0.25730000,
	0.36120000, 0.46770000, 0.58710000, 0.70440000,
}

// LSP MA predictor coefficients, one row of lspPredOrder taps per LSP.
var bv32LSPPredictor = [...]float64{
	0.24958991, 0.13727445, 0.07550095, 0.04152552, 0.02283904, 0.01256147, 0.00690881, 0.00379984,
	0.27227991, 0.14975395, 0.08236467, 0.04530057, 0.02491531, 0.01370342, 0.00753688, 0.00414529,
	0.27227991, 0.14975395, 0.08236467, 0.04530057, 0.02491531, 0.01370342, 0.00753688, 0.00414529,
	0.24958991, 0.13727445, 0.07550095, 0.04152552, 0.02283904, 0.01256147, 0.00690881, 0.00379984,
	0.22689992, 0.12479496, 0.06863723, 0.03775047, 0.02076276, 0.01141952, 0.00628074, 0.00345440,
	0.22689992, 0.12479496, 0.06863723, 0.03775047, 0.02076276, 0.01141952, 0.00628074, 0.00345440,
	0.20420993, 0.11231546, 0.06177350, 0.03397543, 0.01868648, 0.01027757, 0.00565266, 0.00310896,
	0.18151994, 0.09983597, 0.05490978, 0.03020038, 0.01661021, 0.00913561, 0.00502459, 0.00276352,
}

// First-stage LSP prediction error codebook (128 x 8).
var bv32LSPStage1 = [...]float64{
	0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	-0.00903052, -0.01134056, -0.01743764, 0.07720161, 0.03131108, -0.04619240, -0.00324626, -0.02171169,
	0.01860040, -0.00427459, -0.02523067, -0.01664066, -0.03120220, 0.02605867, -0.06130179, 0.04563940,
	0.02195411, 0.02022049, -0.01189565, -0.02011477, 0.02922566, 0.02060010, -0.01267637, 0.03875456,
	-0.00908490, -0.00505666, -0.04093460, -0.03050507, -0.02771317, 0.01050795, -0.00071653, 0.00294412,
	-0.00135433, -0.02070901, 0.06749390, 0.03340133, 0.03244091, 0.03949379, -0.00467766, 0.02810805,
	0.00298042, -0.01117286, 0.00434040, 0.00337141, 0.01675990, 0.01460320, -0.01664903, 0.00910207,
	0.01788481, 0.03822713, -0.01038694, 0.03385207, 0.00393617, -0.00907283, -0.03757491, 0.02345623,
	0.00341976, 0.00869123, -0.00040640, -0.01831916, 0.05545611, 0.02278022, -0.04663669, 0.02932658,
	0.00774804, -0.02186482, 0.03391667, 0.05640852, 0.00649209, 0.01436656, -0.00790484, -0.01130403,
	-0.00303744, -0.03196863, 0.01094193, 0.01677159, -0.02667790, 0.01483457, 0.01160666, 0.01310744,
	-0.01089146, -0.00388249, -0.03153043, 0.00578739, 0.00584251, 0.01924571, -0.02912918, 0.01817775,
	0.02125628, 0.01722266, 0.02217746, -0.02297242, 0.00439085, 0.00409227, -0.01871324, -0.02813324,
	-0.01078423, -0.00444630, -0.05248286, 0.00444330, 0.00035605, -0.02947275, -0.05234518, 0.00845283,
	0.02556264, 0.05011646, -0.00175720, -0.01033580, 0.00852281, -0.03967409, -0.00806900, -0.03394706,
	-0.00410089, 0.02913544, 0.06108371, 0.02718084, -0.01077946, 0.00313148, 0.01775508, 0.00946609,
	0.01382936, 0.01923773, 0.03157388, 0.01244868, -0.00697726, -0.00616031, -0.02479457, -0.01784461,
	-0.00721031, 0.00367848, -0.04219799, 0.02755809, -0.01080876, 0.00579889, 0.03892588, 0.01070629,
	0.01613965, 0.01048289, -0.01633810, 0.00792261, -0.02183219, -0.03345748, 0.03683471, 0.02033888,
	-0.00188498, -0.00621137, 0.05318895, 0.05456331, 0.00813978, -0.01421542, 0.02959342, 0.00973484,
	-0.00386816, -0.03295346, 0.02052455, -0.00407280, 0.05241659, 0.00231676, -0.03753745, 0.04489043,
	0.00566402, 0.01741425, -0.01942230, -0.08279421, -0.01677519, 0.04535377, 0.02364295, 0.01175481,
	-0.00687981, 0.05466438, -0.02268746, 0.02070337, -0.00367048, 0.06924934, 0.00033266, -0.00725298,
	-0.03720512, -0.02273539, -0.00329408, 0.00537309, 0.03016521, 0.03874505, -0.00236808, -0.02445272,
	-0.01032245, 0.00065768, 0.01890930, -0.01663169, 0.02094874, 0.03430417, -0.04333683, -0.02168739,
	0.02045405, 0.00488399, -0.02220830, -0.03505473, 0.00974239, 0.03467005, -0.03919896, -0.00992757,
	0.00588032, 0.00157490, 0.06689485, -0.00250170, -0.05801365, 0.00498730, -0.00366445, -0.05710129,
	-0.00451939, -0.02629761, 0.00359967, -0.00647109, 0.03704251, -0.00524511, -0.00995220, 0.00176238,
	0.00617789, 0.04721515, -0.01154737, -0.02499490, 0.00256139, -0.00585762, 0.01366468, 0.01091294,
	-0.00486988, -0.01561360, 0.00186685, 0.04257458, 0.03038875, 0.02246938, 0.04612277, 0.03168453,
	0.01823243, 0.03556706, 0.07290515, 0.01183428, -0.00822151, -0.03521156, -0.01809310, 0.01597199,
	-0.00984998, -0.00158842, 0.01268265, 0.00236519, -0.02193975, 0.05672847, 0.00853345, 0.02023284,
	0.01020492, 0.03005947, -0.00560782, -0.02453718, -0.04451633, 0.00158586, 0.03055224, 0.01333205,
	-0.00731759, 0.00961522, -0.00019451, -0.00856684, 0.03459095, -0.08858730, 0.00245355, 0.00599568,
	-0.00228055, 0.01012551, 0.00833262, 0.01669922, -0.04635550, 0.03529027, -0.01330805, -0.01302982,
	0.00295940, 0.01524174, -0.00712811, -0.01644327, -0.01014194, 0.02370702, 0.02027111, -0.00837966,
	0.00672433, -0.02508077, 0.00221822, -0.02222387, 0.01459096, -0.02361182, -0.00303864, -0.00146685,
	0.01499071, -0.01649983, 0.03122455, -0.01294490, 0.03082859, 0.01937532, -0.00266764, 0.02284961,
	-0.01418620, -0.00968627, 0.01334614, -0.00793109, -0.02062434, 0.02305765, 0.02436291, -0.05075862,
	0.00933947, -0.01834502, -0.03025032, 0.01112418, 0.01625864, -0.00501124, -0.02811621, -0.01052985,
	0.01216837, -0.01364369, 0.01842389, 0.04672094, -0.01806113, -0.04921429, -0.01059351, 0.02065611,
	-0.02810131, -0.01584307, 0.01295171, -0.00754936, 0.00597815, -0.00543648, -0.02337820, 0.00188994,
	0.00078490, 0.01974927, 0.02222246, 0.02446041, -0.04013890, -0.03734703, -0.02410719, -0.00042530,
	-0.00567307, -0.02746492, 0.02480618, 0.00296656, 0.00580130, 0.02343045, -0.02994066, -0.02042033,
	-0.00662597, 0.03685330, -0.04494405, 0.05274222, -0.04110394, -0.00416036, -0.00896321, -0.03711235,
	0.01880675, -0.02791790, 0.00826524, -0.01948500, 0.00817130, 0.01629049, 0.00578284, 0.01170441,
	-0.04057458, -0.03882874, 0.05241305, 0.02531623, 0.00629277, -0.00802981, -0.02029218, -0.02552824,
	0.00285607, -0.00287986, 0.02225427, 0.01487196, -0.01170192, 0.02965540, -0.02828088, -0.02377558,
	0.00507874, -0.02107159, 0.00150057, 0.01224041, 0.00967828, 0.03985782, 0.06483380, -0.01626082,
	0.00427729, -0.02472732, -0.05919548, 0.03996965, -0.00981853, -0.01527596, -0.00241335, 0.03188526,
	0.01099196, -0.01388915, -0.03756728, -0.00513886, -0.03018345, -0.00675516, 0.02336736, -0.01867480,
	-0.00643844, 0.00299729, -0.03700619, -0.03992672, 0.00921520, 0.04303189, -0.00321951, -0.01645677,
	0.01239391, -0.02388855, 0.00118117, -0.00723729, -0.02639113, -0.01292156, 0.01479035, -0.03558719,
	-0.01666076, -0.03473992, -0.03165529, 0.00696797, -0.02659541, -0.00765009, 0.07266832, -0.00732690,
	0.02860435, -0.01560335, 0.04133988, -0.01997363, -0.01584625, 0.06651546, -0.02646004, -0.02318440,
	-0.00314066, 0.00667222, 0.00308898, -0.04411642, 0.02789138, -0.01286741, 0.01640831, 0.00402914,
	-0.00797783, 0.02662251, -0.00650392, -0.00643346, 0.00447315, 0.03135830, -0.02735243, 0.04683288,
	-0.02742632, -0.00576169, 0.02955307, -0.05067483, -0.05071093, 0.00660966, 0.00852976, -0.05435957,
	0.01465395, -0.01929172, -0.02553178, 0.00651694, 0.01638906, -0.01930230, -0.00639617, 0.03203779,
	-0.00748861, -0.02065947, 0.00353486, 0.03173039, 0.02472083, 0.03068663, 0.01010331, 0.00120852,
	0.01553875, 0.01141195, 0.03046615, -0.02280200, -0.03723507, -0.01505461, -0.00711139, 0.01863400,
	-0.01449391, 0.01605104, -0.01149743, 0.03600908, -0.01646911, -0.00403970, 0.06167914, -0.03503328,
	0.01065581, -0.02634010, -0.05560573, 0.00333462, 0.01440504, 0.03411246, -0.00120397, 0.03838640,
	0.00323372, 0.03030277, -0.01288766, -0.01737428, 0.04558414, 0.05529277, -0.02951814, -0.00168624,
	-0.01937902, -0.00195513, 0.01604056, 0.00690560, -0.05142904, 0.08421932, -0.02246146, 0.00459320,
	0.00745443, 0.00411139, -0.03330792, -0.02163139, -0.02809850, -0.01018679, -0.06664963, -0.02092810,
	0.00637947, 0.01603669, 0.01287077, 0.00005017, 0.01289283, -0.00157516, 0.01870501, 0.01189901,
	0.00197916, 0.00954133, 0.03534165, 0.01815924, 0.04027133, 0.01499198, -0.01819235, -0.00936191,
	0.01761204, -0.00889553, -0.00066807, -0.01298344, -0.00501954, 0.07494540, 0.00959941, 0.03283448,
	0.00707846, 0.00076796, 0.00519830, -0.07179462, 0.00400742, -0.00060026, 0.00203391, -0.01579854,
	-0.00491952, -0.00561952, 0.01628506, 0.01006944, -0.00352739, -0.01439853, -0.01310203, 0.01435378,
	0.00428366, 0.00991619, 0.00362043, -0.01715336, 0.02519353, -0.00151519, -0.02825066, 0.01063379,
	-0.00012626, 0.02059266, -0.01478936, 0.00358388, 0.04315653, -0.00200593, 0.00195791, -0.01748800,
	0.01164775, 0.00768209, -0.03409279, 0.06412607, -0.02346167, -0.03105496, -0.01423098, 0.00482506,
	0.00062335, -0.01842616, -0.00955568, 0.05593340, -0.04083120, 0.03658756, -0.02655106, -0.01692001,
	0.02192330, 0.00083515, -0.07315214, 0.01776712, 0.01512055, -0.00198655, -0.05092835, 0.03079706,
	0.01847811, 0.00908493, 0.02658798, 0.00946669, -0.02353171, 0.02660520, -0.00906587, -0.01994973,
	0.00250755, -0.01720259, 0.00207635, -0.05434106, 0.02608356, 0.01832141, 0.01518608, 0.02796771,
	0.00855698, -0.00740395, -0.01470651, -0.00851653, 0.00890977, 0.00060301, 0.00436908, 0.01161156,
	0.01230181, -0.01363617, 0.04907886, 0.01972479, -0.02500511, -0.04515821, -0.03913609, -0.00291495,
	0.01492481, 0.03209213, -0.02833827, 0.00382677, -0.01557489, 0.05169388, -0.01330312, 0.01525268,
	0.02104404, -0.01879834, 0.00235571, -0.03233749, -0.05087790, -0.04151262, -0.00378593, -0.02429398,
	-0.03003105, 0.02439161, 0.00714977, -0.02145756, -0.03047107, 0.02493592, -0.02892132, 0.01186628,
	0.01548624, 0.00235474, 0.01371154, 0.00456054, -0.00089672, 0.03929989, -0.02202402, 0.01166414,
	0.02552826, -0.02714343, 0.01686218, 0.02126269, -0.02096321, -0.00146716, -0.00875680, -0.05731678,
	-0.00453505, 0.01701235, 0.01348544, 0.03046981, 0.03016583, 0.05253847, 0.06895565, 0.04138182,
	-0.00216477, 0.01587970, -0.05364249, 0.00080592, 0.00390798, -0.01788149, 0.01907545, 0.03634785,
	0.04359891, 0.00418231, 0.06081802, 0.04440223, 0.01700273, 0.01143746, 0.04777488, 0.03145088,
	-0.01286018, -0.00002656, -0.01535325, -0.00338937, 0.00927756, -0.00626571, -0.00133647, 0.00575748,
	0.02437884, 0.00423061, 0.00917318, 0.02425923, -0.01294970, -0.03613590, -0.01534972, -0.02252689,
	0.01898668, 0.03851437, 0.00981884, -0.01341960, -0.02760906, -0.05238700, 0.00220814, -0.00325683,
	-0.00379569, -0.01592650, 0.04570485, 0.04688474, 0.02395700, 0.01121292, 0.00963317, 0.02090739,
	0.02136327, 0.02543028, 0.00786139, -0.02777446, 0.00244987, 0.01481557, -0.03098632, 0.04554117,
	-0.00138900, -0.02140752, -0.00498660, 0.01019934, -0.01289084, -0.03595293, -0.00834805, 0.02793740,
	0.04707409, -0.00325227, 0.01126871, 0.03300113, -0.03745065, 0.00370798, -0.02554913, -0.03484409,
	0.01430668, 0.02997108, -0.01457673, 0.01631739, -0.03252476, 0.01905753, -0.00413503, -0.03177820,
	-0.00576961, -0.03769004, 0.02314825, -0.03766109, 0.03903734, 0.01656356, -0.05057131, 0.00791311,
	0.00651078, 0.00126821, 0.00727302, 0.00490067, -0.00782881, -0.03229940, -0.02428563, 0.00647609,
	0.00887518, -0.00440758, -0.00337925, 0.04554646, 0.00278068, 0.00982631, -0.00066233, 0.02573098,
	0.00769663, 0.01709982, 0.00192656, -0.03764092, 0.02142879, -0.02356845, -0.00933870, 0.01430961,
	0.01889363, 0.01229950, -0.01229942, 0.00184100, -0.02612727, 0.00984805, -0.00088364, -0.02599428,
	-0.01141865, 0.04196056, -0.03036672, 0.04829120, -0.01930455, 0.02477003, 0.00982745, -0.02364980,
	0.01285686, -0.01527376, -0.02976966, 0.03173949, -0.03818430, 0.06535057, -0.05117440, 0.03412322,
	0.02456158, 0.01712450, 0.08491396, 0.00832188, -0.03513697, -0.01053715, 0.00381876, 0.03373568,
	-0.00519847, -0.00513697, 0.00636779, 0.05804815, 0.01793583, -0.01384607, -0.02010665, 0.03975331,
	-0.00466153, 0.01266967, 0.01506970, -0.03257864, 0.02012993, -0.01573805, -0.01021543, 0.00386861,
	0.00019194, -0.02086962, 0.01263939, 0.02450338, -0.01019751, -0.03064195, -0.06236228, 0.04858506,
	-0.01566838, -0.02023482, -0.02248315, 0.01334611, -0.00641698, -0.03366977, -0.00763370, -0.03257096,
	0.01273723, 0.02678708, -0.00843100, -0.01567024, -0.05918922, -0.00126562, -0.03709931, 0.00553755,
	-0.00835464, -0.00965709, -0.01630491, -0.01835314, 0.04818919, 0.00004154, 0.03096701, -0.00785985,
	0.01786765, -0.00319388, -0.01924679, 0.01106355, 0.01447139, -0.05838458, -0.02443646, -0.01833967,
	-0.00308203, 0.03305113, -0.04064278, -0.00310408, -0.03571604, 0.03346474, 0.02433695, -0.00027011,
	0.00111059, -0.01264955, 0.01529661, -0.04513290, -0.02136274, -0.02184737, -0.02032628, -0.00521141,
	0.00751019, -0.02702321, -0.01324931, -0.00678251, 0.02113918, -0.03170747, 0.00086909, 0.02531841,
	0.00751265, 0.04592465, 0.00899883, -0.06079709, 0.01454955, -0.02074125, -0.03997234, 0.00209530,
	-0.03329661, 0.00225023, -0.02968298, -0.01475329, 0.05128488, -0.01792832, 0.04759077, 0.04855963,
	0.00886931, -0.01246514, 0.04178420, 0.00467449, 0.01241982, 0.04570203, -0.04113375, -0.02929564,
	-0.01021415, 0.01134733, 0.00691134, 0.03222067, -0.06265906, 0.06659609, 0.01634708, -0.01111581,
	0.02773093, -0.01225983, 0.00745167, -0.04087470, 0.02611249, 0.03765768, 0.01803640, -0.01312113,
	-0.01117907, -0.06457723, -0.01855333, 0.01932398, 0.03865797, -0.07181672, 0.01486581, -0.00517315,
	-0.00285744, -0.00647055, 0.03453634, 0.03983505, -0.05778921, -0.00957187, 0.00027402, -0.00856960,
	-0.00804626, 0.03769410, -0.02088146, 0.00809614, -0.02236550, 0.03312978, -0.01405537, -0.02932756,
	0.01168075, -0.00142763, -0.01707537, -0.00604424, -0.00305404, 0.01302528, -0.01969001, -0.01474871,
	0.02792208, 0.04478919, 0.01715239, -0.05273365, -0.00637538, -0.07330289, 0.00388081, 0.02538405,
	0.00364319, -0.01434197, 0.00383851, -0.02099252, 0.04447566, -0.01715027, 0.00027536, 0.00218733,
	0.03028115, 0.00277056, 0.01058490, -0.01039539, -0.04325339, 0.01094318, -0.02400673, 0.01948066,
	-0.02797503, 0.00361763, -0.01673238, -0.03106535, -0.06394419, 0.01254893, -0.01831014, -0.01137724,
	0.01126653, -0.02793055, 0.03453437, 0.03612429, -0.01549086, -0.02986172, 0.02921887, 0.02108666,
}

// Second-stage LSP codebook, lower split (32 x 3).
var bv32LSPStage2Low = [...]float64{
	0.00000000, 0.00000000, 0.00000000,
	0.00287581, -0.00139354, 0.01170488,
	0.00305350, -0.00748023, 0.01187747,
	-0.01136194, 0.01117273, -0.01631408,
	-0.00815512, 0.00958223, -0.01630041,
	-0.00824922, -0.01502854, 0.00705229,
	0.00747104, -0.01891450, -0.00736293,
	0.00974832, -0.01404627, -0.00468301,
	0.01000271, 0.00261445, 0.02205362,
	-0.00451596, -0.00083651, 0.00213565,
	0.00991413, 0.01286165, 0.00076114,
	-0.00333919, 0.00494701, -0.00936586,
	-0.01066556, -0.00642316, -0.01281290,
	-0.01233243, -0.00240069, -0.01412761,
	0.00577338, -0.00595181, 0.00211316,
	0.00024032, -0.00318488, -0.01477593,
	-0.00669607, 0.00363350, 0.00088600,
	0.00116423, -0.01109572, -0.00024365,
	-0.01416723, -0.01017313, 0.00107266,
	0.00454253, -0.00161093, -0.00558201,
	-0.00548267, 0.01236714, 0.00528234,
	-0.00594229, 0.01614637, 0.01497229,
	-0.00044564, 0.00738980, 0.00149904,
	0.01768212, 0.01806230, 0.00102769,
	0.00712983, 0.00253456, 0.00401028,
	-0.00088629, 0.00637108, 0.01529618,
	0.00007574, -0.00646632, 0.02021528,
	0.00339079, 0.00253104, 0.00949872,
	-0.01878443, 0.01189121, 0.00928901,
	0.00274973, -0.02081765, -0.00229135,
	0.00496394, 0.00065991, 0.01841006,
	0.00977589, -0.00094221, 0.00817122,
}

// Second-stage LSP codebook, upper split (32 x 5).
var bv32LSPStage2High = [...]float64{
	0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	-0.00807265, 0.01047699, 0.00853886, -0.01108061, 0.00889272,
	0.01619600, 0.00842208, 0.00227232, 0.00501266, 0.00060510,
	0.00310531, 0.01305210, -0.00519753, -0.01377837, -0.00003806,
	0.00173602, 0.00172724, 0.01036434, 0.01066760, -0.01178316,
	0.00007580, 0.00992313, -0.00726409, -0.00348269, 0.00974390,
	-0.00266867, 0.00391628, -0.00693234, -0.02428903, 0.00612004,
	-0.00148466, 0.01638577, -0.00813380, -0.00977843, -0.01707140,
	0.01374218, 0.01106325, 0.01934864, 0.02436251, -0.00741018,
	0.01252479, -0.01768549, 0.00816472, 0.00369376, 0.00946939,
	0.00129759, -0.00564494, 0.00233376, 0.00480073, 0.01902326,
	0.00990168, -0.01474377, -0.00553465, -0.00191016, 0.00481323,
	-0.00963019, -0.00812344, -0.00509417, 0.00401658, 0.00485353,
	0.01917280, 0.00729115, -0.01080082, -0.00538353, -0.00923854,
	-0.00470238, 0.01324921, 0.00395637, 0.01054000, 0.00605947,
	0.00765786, -0.02113926, 0.01999867, -0.01538547, 0.00602372,
	0.01019075, -0.00908697, -0.00758366, -0.00217297, 0.00241728,
	0.03565583, 0.00128744, -0.02962671, 0.00810778, -0.01716912,
	0.01103106, 0.01296657, 0.00329008, -0.01066044, -0.01339801,
	0.02093722, 0.00335211, -0.01883313, -0.01275125, -0.00340172,
	-0.01533273, -0.01640422, 0.00363257, 0.00970685, 0.00369823,
	-0.01406093, 0.00347326, 0.01247399, 0.00342380, 0.01658038,
	-0.01828376, -0.00061240, -0.00743283, 0.01329400, -0.00634881,
	-0.02946534, -0.02091625, -0.01582743, -0.00856934, -0.00865793,
	-0.01019017, 0.01281244, 0.00161134, -0.00717791, 0.00204478,
	-0.00685067, 0.00235380, -0.00854940, -0.01990109, 0.01964688,
	-0.01748896, -0.01583930, 0.03248270, 0.00602040, 0.00542135,
	0.02979633, 0.01170707, 0.00680149, 0.00746966, 0.00117905,
	-0.00412829, 0.01418126, 0.00404210, -0.00707367, -0.00465536,
	-0.01409840, 0.01234226, 0.00144761, -0.01323987, 0.02056445,
	-0.00630581, -0.01072340, 0.00734591, -0.01399662, 0.00422066,
	0.00984242, 0.01003361, -0.00125001, 0.00471543, 0.00509649,
}

// Three-tap pitch predictor codebook. Each row holds 2b0, 2b1, 2b2, -b0^2, -b1^2, -b2^2, -2b0b1, -2b1b2, -2b0b2.
var bv32PitchTapCB = [...]float64{
	0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	0.00000000, 0.30000000, 0.00000000, 0.00000000, -0.02250000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	0.00000000, 0.60000000, 0.00000000, 0.00000000, -0.09000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	0.00000000, 0.90000000, 0.00000000, 0.00000000, -0.20250000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	0.00000000, 1.20000000, 0.00000000, 0.00000000, -0.36000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	0.00000000, 1.44000000, 0.00000000, 0.00000000, -0.51840000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	0.00000000, 1.68000000, 0.00000000, 0.00000000, -0.70560000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	0.00000000, 1.90000000, 0.00000000, 0.00000000, -0.90250000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	0.00000000, 2.10000000, 0.00000000, 0.00000000, -1.10250000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	0.00000000, 2.30000000, 0.00000000, 0.00000000, -1.32250000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	0.12000000, 0.36000000, 0.12000000, -0.00360000, -0.03240000, -0.00360000, -0.02160000, -0.02160000, -0.00720000,
	0.20000000, 0.60000000, 0.20000000, -0.01000000, -0.09000000, -0.01000000, -0.06000000, -0.06000000, -0.02000000,
	0.28000000, 0.84000000, 0.28000000, -0.01960000, -0.17640000, -0.01960000, -0.11760000, -0.11760000, -0.03920000,
	0.34000000, 1.02000000, 0.34000000, -0.02890000, -0.26010000, -0.02890000, -0.17340000, -0.17340000, -0.05780000,
	0.38000000, 1.14000000, 0.38000000, -0.03610000, -0.32490000, -0.03610000, -0.21660000, -0.21660000, -0.07220000,
	0.42000000, 1.26000000, 0.42000000, -0.04410000, -0.39690000, -0.04410000, -0.26460000, -0.26460000, -0.08820000,
	0.24000000, 0.36000000, 0.00000000, -0.01440000, -0.03240000, 0.00000000, -0.04320000, 0.00000000, 0.00000000,
	0.36000000, 0.54000000, 0.00000000, -0.03240000, -0.07290000, 0.00000000, -0.09720000, 0.00000000, 0.00000000,
	0.48000000, 0.72000000, 0.00000000, -0.05760000, -0.12960000, 0.00000000, -0.17280000, 0.00000000, 0.00000000,
	0.57600000, 0.86400000, 0.00000000, -0.08294400, -0.18662400, 0.00000000, -0.24883200, 0.00000000, 0.00000000,
	0.67200000, 1.00800000, 0.00000000, -0.11289600, -0.25401600, 0.00000000, -0.33868800, 0.00000000, 0.00000000,
	0.76000000, 1.14000000, 0.00000000, -0.14440000, -0.32490000, 0.00000000, -0.43320000, 0.00000000, 0.00000000,
	0.84000000, 1.26000000, 0.00000000, -0.17640000, -0.39690000, 0.00000000, -0.52920000, 0.00000000, 0.00000000,
	0.92000000, 1.38000000, 0.00000000, -0.21160000, -0.47610000, 0.00000000, -0.63480000, 0.00000000, 0.00000000,
	0.00000000, 0.36000000, 0.24000000, 0.00000000, -0.03240000, -0.01440000, 0.00000000, -0.04320000, 0.00000000,
	0.00000000, 0.54000000, 0.36000000, 0.00000000, -0.07290000, -0.03240000, 0.00000000, -0.09720000, 0.00000000,
	0.00000000, 0.72000000, 0.48000000, 0.00000000, -0.12960000, -0.05760000, 0.00000000, -0.17280000, 0.00000000,
	0.00000000, 0.86400000, 0.57600000, 0.00000000, -0.18662400, -0.08294400, 0.00000000, -0.24883200, 0.00000000,
	0.00000000, 1.00800000, 0.67200000, 0.00000000, -0.25401600, -0.11289600, 0.00000000, -0.33868800, 0.00000000,
	0.00000000, 1.14000000, 0.76000000, 0.00000000, -0.32490000, -0.14440000, 0.00000000, -0.43320000, 0.00000000,
	0.00000000, 1.26000000, 0.84000000, 0.00000000, -0.39690000, -0.17640000, 0.00000000, -0.52920000, 0.00000000,
	0.00000000, 1.38000000, 0.92000000, 0.00000000, -0.47610000, -0.21160000, 0.00000000, -0.63480000, 0.00000000,
}

// Log-gain MA predictor coefficients.
var bv32GainPredictor = [...]float64{
	0.12347553, 0.09878042, 0.07902434, 0.06321947, 0.05057558, 0.04046046, 0.03236837, 0.02589469,
	0.02071576, 0.01657260, 0.01325808, 0.01060647, 0.00848517, 0.00678814, 0.00543051, 0.00434441,
}

// Log-gain prediction error codebook.
var bv32GainCB = [...]float64{
	-8.00000000, 1.30000000, 1.75000000, -7.00000000, -6.10000000, 2.20000000, 2.70000000, -5.30000000,
	-4.60000000, 3.20000000, 3.75000000, -3.95000000, -3.35000000, 4.30000000, 4.90000000, -2.80000000,
	-2.30000000, 5.50000000, 6.15000000, -1.85000000, -1.40000000, 6.85000000, 7.60000000, -0.95000000,
	-0.50000000, 8.40000000, 9.30000000, -0.05000000, 0.40000000, 10.30000000, 11.40000000, 0.85000000,
}

// Codebook indices of bv32GainCB in ascending order of value.
var bv32GainOrder = [...]int{
	0, 3, 4, 7, 8, 11, 12, 15, 16, 19, 20, 23, 24, 27, 28, 31, 1, 2, 5, 6, 9, 10, 13, 14, 17, 18, 21, 22, 25, 26, 29, 30,
}

// Next higher bv32GainCB value for each index (the largest maps to itself).
var bv32GainNextHigher = [...]float64{
	-7.00000000, 1.75000000, 2.20000000, -6.10000000, -5.30000000, 2.70000000, 3.20000000, -4.60000000,
	-3.95000000, 3.75000000, 4.30000000, -3.35000000, -2.80000000, 4.90000000, 5.50000000, -2.30000000,
	-1.85000000, 6.15000000, 6.85000000, -1.40000000, -0.95000000, 7.60000000, 8.40000000, -0.50000000,
	-0.05000000, 9.30000000, 10.30000000, 0.40000000, 0.85000000, 11.40000000, 11.40000000, 1.30000000,
}

// Maximum log-gain increase, indexed by level-relative gain (rows) and previous gain change (columns).
var bv32GainLimit = [...]float64{
	11.98400000, 11.98400000, 11.98400000, 11.98400000, 12.33400000, 13.03400000, 13.73400000, 14.43400000, 15.13400000, 15.83400000, 16.53400000,
	11.96900000, 11.96900000, 11.96900000, 11.96900000, 12.31900000, 13.01900000, 13.71900000, 14.41900000, 15.11900000, 15.81900000, 16.51900000,
	11.93980000, 11.93980000, 11.93980000, 11.93980000, 12.28980000, 12.98980000, 13.68980000, 14.38980000, 15.08980000, 15.78980000, 16.48980000,
	11.88340000, 11.88340000, 11.88340000, 11.88340000, 12.23340000, 12.93340000, 13.63340000, 14.33340000, 15.03340000, 15.73340000, 16.43340000,
	11.77570000, 11.77570000, 11.77570000, 11.77570000, 12.12570000, 12.82570000, 13.52570000, 14.22570000, 14.92570000, 15.62570000, 16.32570000,
	11.57320000, 11.57320000, 11.57320000, 11.57320000, 11.92320000, 12.62320000, 13.32320000, 14.02320000, 14.72320000, 15.42320000, 16.12320000,
	11.20440000, 11.20440000, 11.20440000, 11.20440000, 11.55440000, 12.25440000, 12.95440000, 13.65440000, 14.35440000, 15.05440000, 15.75440000,
	10.57020000, 10.57020000, 10.57020000, 10.57020000, 10.92020000, 11.62020000, 12.32020000, 13.02020000, 13.72020000, 14.42020000, 15.12020000,
	9.57950000, 9.57950000, 9.57950000, 9.57950000, 9.92950000, 10.62950000, 11.32950000, 12.02950000, 12.72950000, 13.42950000, 14.12950000,
	8.24310000, 8.24310000, 8.24310000, 8.24310000, 8.59310000, 9.29310000, 9.99310000, 10.69310000, 11.39310000, 12.09310000, 12.79310000,
	6.75690000, 6.75690000, 6.75690000, 6.75690000, 7.10690000, 7.80690000, 8.50690000, 9.20690000, 9.90690000, 10.60690000, 11.30690000,
	5.42050000, 5.42050000, 5.42050000, 5.42050000, 5.77050000, 6.47050000, 7.17050000, 7.87050000, 8.57050000, 9.27050000, 9.97050000,
	4.42980000, 4.42980000, 4.42980000, 4.42980000, 4.77980000, 5.47980000, 6.17980000, 6.87980000, 7.57980000, 8.27980000, 8.97980000,
	3.79560000, 3.79560000, 3.79560000, 3.79560000, 4.14560000, 4.84560000, 5.54560000, 6.24560000, 6.94560000, 7.64560000, 8.34560000,
	3.42680000, 3.42680000, 3.42680000, 3.42680000, 3.77680000, 4.47680000, 5.17680000, 5.87680000, 6.57680000, 7.27680000, 7.97680000,
	3.22430000, 3.22430000, 3.22430000, 3.22430000, 3.57430000, 4.27430000, 4.97430000, 5.67430000, 6.37430000, 7.07430000, 7.77430000,
	3.11660000, 3.11660000, 3.11660000, 3.11660000, 3.46660000, 4.16660000, 4.86660000, 5.56660000, 6.26660000, 6.96660000, 7.66660000,
	3.06020000, 3.06020000, 3.06020000, 3.06020000, 3.41020000, 4.11020000, 4.81020000, 5.51020000, 6.21020000, 6.91020000, 7.61020000,
}

// Excitation shape codebook (32 x 4); the sign is coded separately.
var bv32ExcitationCB = [...]float64{
	-0.93196069, -1.97778677, 0.41646658, 1.61617742,
	0.36110268, 1.02337212, -2.20488994, -1.21761943,
	-1.23704885, -2.06820691, 0.13659878, -0.72369572,
	0.08015107, 0.44998399, 2.33897572, 0.63479625,
	-1.44167355, 0.49214219, -0.25056157, 1.84735812,
	2.34281884, 0.17796859, -0.01592567, -0.23130065,
	0.12637008, 0.69717929, 1.57741410, -1.58750414,
	1.27800278, 0.65255313, -0.03889281, 1.79487240,
	-1.04222605, 1.24279624, 1.53162544, -0.25342882,
	-0.98499218, 0.36128811, -1.26076036, -1.44162369,
	-0.34584908, 1.47615127, -1.10897526, 1.05721493,
	-1.41254745, 1.16685370, 0.23696533, -1.09898292,
	-1.31176462, -0.16499991, -1.45964023, 0.79308496,
	-1.40515348, 0.28379539, 1.10028013, 0.98422222,
	-1.30241538, -0.38621005, 1.14075603, -0.81554056,
	-1.30956472, 1.35263514, 0.11890522, 0.40502192,
	1.41909167, -0.63722757, 1.02995738, 0.15904383,
	0.28924772, 0.48950251, -0.50081221, -1.70132231,
	0.36681624, -1.60037191, 0.72623165, 0.49401948,
	0.12015502, -1.78704184, -0.50537951, 0.01968674,
	-1.30334218, -1.05970603, 0.60135631, 0.35967067,
	-0.74831201, -1.22009340, -0.62977558, 0.82455049,
	-0.04154240, -0.71105092, 1.59673066, -0.01139494,
	-0.17416960, 0.88969528, 0.81476788, 1.15708867,
	-1.17945499, -0.76560316, -0.76683923, -0.47693339,
	-0.00355640, -0.31603114, 0.40634537, -1.53789925,
	-0.02930777, -0.41945070, -1.32538791, 0.09575524,
	-0.42343105, 0.54043454, 0.71282446, -0.89942066,
	0.36402510, 0.89157213, -0.20075901, 0.56760457,
	0.70052079, -0.18467438, 0.29280877, -0.47400270,
	-0.38303706, -0.22574709, 0.58245817, 0.47588632,
	-0.53375007, 0.38363235, -0.07049686, -0.42652917,
}
