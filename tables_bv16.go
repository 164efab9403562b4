package broadvoice

// Tables for the 8 kHz (16 kbit/s) variant.

// High-pass pre-filter numerator, 2nd-order Butterworth at 100 Hz.
var bv16HPFNum = [...]float64{
	0.94597686, -1.89195371, 0.94597686,
}

// High-pass pre-filter denominator.
var bv16HPFDen = [...]float64{
	1.00000000, -1.88903308, 0.89487434,
}

// Pitch decimation low-pass numerator, 4th-order Butterworth at 800 Hz.
var bv16DecimNum = [...]float64{
	0.00482434, 0.01929737, 0.02894606, 0.01929737, 0.00482434,
}

// Pitch decimation low-pass denominator.
var bv16DecimDen = [...]float64{
	1.00000000, -2.36951301, 2.31398841, -1.05466541, 0.18737949,
}

// Asymmetric LPC analysis window (160 samples).
var bv16LPCWindow = [...]float64{
	0.00003147, 0.00028322, 0.00078659, 0.00154133, 0.00254706, 0.00380327, 0.00530934, 0.00706449,
	0.00906785, 0.01131841, 0.01381504, 0.01655648, 0.01954134, 0.02276813, 0.02623522, 0.02994086,
	0.03388320, 0.03806023, 0.04246987, 0.04710989, 0.05197795, 0.05707161, 0.06238829, 0.06792532,
	0.07367992, 0.07964918, 0.08583010, 0.09221957, 0.09881436, 0.10561117, 0.11260656, 0.11979702,
	0.12717892, 0.13474854, 0.14250209, 0.15043564, 0.15854521, 0.16682671, 0.17527598, 0.18388875,
	0.19266069, 0.20158739, 0.21066435, 0.21988700, 0.22925069, 0.23875072, 0.24838229, 0.25814056,
	0.26802061, 0.27801747, 0.28812610, 0.29834142, 0.30865828, 0.31907149, 0.32957580, 0.34016593,
	0.35083653, 0.36158224, 0.37239766, 0.38327732, 0.39421575, 0.40520746, 0.41624689, 0.42732849,
	0.43844669, 0.44959588, 0.46077045, 0.47196478, 0.48317322, 0.49439013, 0.50560987, 0.51682678,
	0.52803522, 0.53922955, 0.55040412, 0.56155331, 0.57267151, 0.58375311, 0.59479254, 0.60578425,
	0.61672268, 0.62760234, 0.63841776, 0.64916347, 0.65983407, 0.67042420, 0.68092851, 0.69134172,
	0.70165858, 0.71187390, 0.72198253, 0.73197939, 0.74185944, 0.75161771, 0.76124928, 0.77074931,
	0.78011300, 0.78933565, 0.79841261, 0.80733931, 0.81611125, 0.82472402, 0.83317329, 0.84145479,
	0.84956436, 0.85749791, 0.86525146, 0.87282108, 0.88020298, 0.88739344, 0.89438883, 0.90118564,
	0.90778043, 0.91416990, 0.92035082, 0.92632008, 0.93207468, 0.93761171, 0.94292839, 0.94802205,
	0.95289011, 0.95753013, 0.96193977, 0.96611680, 0.97005914, 0.97376478, 0.97723187, 0.98045866,
	0.98344352, 0.98618496, 0.98868159, 0.99093215, 0.99293551, 0.99469066, 0.99619673, 0.99745294,
	0.99845867, 0.99921341, 0.99971678, 0.99996853, 0.99922904, 0.99306846, 0.98078528, 0.96245524,
	0.93819134, 0.90814317, 0.87249601, 0.83146961, 0.78531693, 0.73432251, 0.67880075, 0.61909395,
	0.55557023, 0.48862124, 0.41865974, 0.34611706, 0.27144045, 0.19509032, 0.11753740, 0.03925982,
}

// Autocorrelation lag window; entry 0 is the white noise correction factor.
var bv16LagWindow = [...]float64{
	1.00010000, 0.99950664, 0.99802803,
	0.99556853, 0.99213541, 0.98773878,
	0.98239158, 0.97610948, 0.96891079,
}

// Long-term mean of the LSP vector (normalized frequency).
var bv16LSPMean = [...]float64{
	0.05514530, 0.11810300, 0.22497560, 0.33160400,
	0.45758060, 0.57208250, 0.71932980, 0.82781980,
}

// LSP MA predictor coefficients, one row of lspPredOrder taps per LSP.
var bv16LSPPredictor = [...]float64{
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
var bv16LSPStage1 = [...]float64{
	0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	-0.02411066, 0.02663075, 0.02512407, -0.04698206, -0.00820700, -0.05258470, 0.01995483, -0.00419076,
	0.00502703, -0.01962174, 0.01115615, -0.03474276, -0.05133612, -0.04499184, -0.02134638, 0.00365620,
	0.00328909, 0.03964218, -0.01673340, 0.02373281, 0.03955119, 0.03938077, 0.00526614, 0.00025829,
	-0.00318866, 0.02182784, 0.02833488, 0.01138840, -0.00244719, 0.02506567, -0.03552822, 0.02363872,
	-0.01245213, -0.02039239, 0.02576043, -0.03654510, 0.01410376, 0.01937621, 0.05194967, -0.00236147,
	0.01103017, -0.00102213, -0.02453371, -0.03105003, 0.06799391, 0.00147022, -0.02784795, 0.03714014,
	-0.02114243, 0.01752573, 0.00428097, -0.00835534, 0.01703656, -0.00223718, -0.01757784, -0.00013731,
	-0.01665083, -0.01691583, 0.01782547, -0.01094525, -0.01189153, -0.05115478, 0.02887416, 0.01382479,
	-0.02941364, -0.03914752, -0.00389349, 0.00031799, 0.01340967, -0.02043513, 0.05169091, 0.03317439,
	-0.02003120, 0.03796805, -0.00811653, 0.00003968, 0.01688177, 0.01208623, 0.01198013, 0.01506086,
	0.04114662, 0.03559549, -0.00401435, -0.03119615, 0.04991451, -0.00925680, 0.02924454, -0.03310622,
	-0.01821728, -0.00999850, -0.01581832, 0.03144542, -0.01920452, 0.01962543, -0.02628558, -0.02460976,
	-0.02132544, 0.02714564, 0.07060385, 0.02846490, -0.00125625, 0.09910207, 0.01681784, 0.00882412,
	-0.02582253, 0.00823989, 0.00378084, 0.05347840, -0.00947378, 0.02080279, 0.01721446, -0.00940590,
	-0.00686581, 0.00323760, 0.03243790, 0.03277298, -0.02021520, -0.04250699, 0.02545272, 0.00061129,
	0.02377113, -0.01141698, -0.00820623, 0.02189043, -0.06990667, -0.01085808, -0.00399678, -0.01457373,
	-0.02860094, -0.02850197, 0.05606640, 0.00969372, -0.04069807, 0.01261289, 0.02357556, 0.00406013,
	0.01555525, -0.00585151, -0.00841095, -0.04561353, -0.00920262, 0.06005199, 0.02375599, 0.05579886,
	0.03910939, 0.04896794, -0.02471546, 0.06489691, -0.05031019, -0.00172550, 0.02783109, -0.01502031,
	-0.01207369, 0.02504339, -0.02794120, 0.00510791, 0.03717126, -0.02376926, -0.01901106, 0.00333917,
	-0.00444036, -0.00088448, 0.03134565, -0.00637151, -0.00406674, 0.00222739, -0.02212467, 0.01225519,
	-0.02129885, 0.00012456, 0.00676542, -0.00777307, 0.00990088, -0.06130593, 0.01848173, 0.02877748,
	0.00803498, -0.00562703, -0.02531276, -0.01909724, 0.00963092, 0.01153323, 0.00138375, -0.02382388,
	0.00937188, 0.00560061, -0.07226419, -0.03156395, 0.02727606, -0.01460174, -0.03943763, 0.00088560,
	-0.01381490, -0.01079650, 0.00618708, -0.00862094, -0.00059835, -0.00584208, 0.01079251, -0.02268574,
	0.00448181, -0.01367765, 0.05292138, 0.01169221, 0.03307530, -0.03134467, -0.02695693, -0.01276245,
	0.00796373, -0.00575290, 0.04195330, 0.04847033, -0.01054128, -0.01368330, -0.03726424, -0.02069297,
	-0.01336051, -0.02115387, 0.02721867, -0.00542229, 0.00851801, -0.00481440, 0.02568345, -0.03449088,
	0.00261892, 0.00293111, -0.01063548, -0.00330676, 0.02924180, 0.02548364, 0.01243574, 0.02627832,
	-0.00787288, 0.01095304, -0.01448130, 0.02490124, -0.00117007, 0.01632336, 0.00818605, 0.01252754,
	0.01031041, 0.02471697, -0.03913813, -0.02349023, 0.02655825, -0.03125551, 0.00582310, -0.00478129,
	-0.02922492, 0.00587597, -0.03509647, -0.04077768, 0.05531006, 0.00851423, 0.01379064, 0.02579307,
	-0.01268952, 0.04547389, 0.01225349, 0.00622330, 0.06820886, 0.02762223, 0.02572658, 0.00571336,
	0.02697327, -0.00438736, -0.00763542, 0.06429930, 0.03592088, -0.00839208, 0.02195322, -0.02278854,
	-0.02336901, -0.01552933, -0.01303043, 0.02086849, -0.05784197, -0.01414232, 0.00232675, 0.00096088,
	-0.00486141, 0.02212079, -0.00633904, -0.02075901, -0.01585481, 0.06951992, 0.00037213, 0.03206156,
	0.00368714, -0.03390392, -0.02669032, 0.02547919, -0.06239195, -0.03908157, 0.04288703, 0.01429455,
	0.03916481, -0.04643960, -0.02786965, -0.02955811, 0.04662398, 0.01078390, -0.04678537, 0.00752890,
	-0.02114270, -0.01903825, -0.01213956, -0.02025126, -0.01344013, 0.02490838, -0.03734800, 0.03740130,
	-0.01714328, -0.05166428, 0.01048950, 0.01939025, 0.05885819, -0.01151208, 0.01778430, 0.02802057,
	0.02835763, -0.01404490, 0.00065591, 0.00996364, 0.02855219, 0.00361762, -0.00070602, 0.00874996,
	0.00104483, -0.00480546, 0.05043458, -0.04157465, -0.02210214, 0.01831130, -0.03175798, 0.01346940,
	-0.01435761, 0.00053988, 0.03143848, -0.02205556, 0.00810907, -0.04822987, -0.03743300, 0.03490306,
	0.00821664, 0.01062204, 0.01132573, 0.01599394, -0.01016435, -0.04028530, -0.00045676, -0.00164557,
	-0.00347416, -0.01274555, 0.01000381, 0.03966992, 0.02826755, 0.00585929, 0.01157154, -0.04099038,
	-0.01369725, -0.01871359, 0.05598362, -0.08934487, -0.05469437, -0.00350744, 0.03058539, -0.00192695,
	0.00545454, -0.00283891, 0.01590208, -0.01072421, 0.02185656, -0.02759618, 0.00778721, 0.05015472,
	-0.02749177, 0.00734397, 0.00054104, -0.00144257, 0.02114290, -0.03422859, -0.00427805, 0.00582421,
	0.01076719, 0.01982517, -0.03941125, -0.01398591, 0.02464707, 0.00181608, -0.00274768, -0.03177969,
	0.01212405, 0.01296607, -0.02754324, 0.05127966, -0.03277632, -0.01167242, 0.01744407, -0.00857614,
	-0.02833837, 0.01426583, 0.01748347, -0.00972859, 0.05952457, 0.00496915, 0.02759019, 0.02043213,
	-0.00131085, 0.01205853, -0.00595464, 0.02584154, -0.02714118, -0.01432057, -0.04197557, -0.00817982,
	-0.00026177, -0.01076898, 0.05722587, -0.02469074, -0.00210821, -0.01450932, 0.00672945, -0.01054984,
	0.02137182, 0.00832203, -0.00232329, 0.02440494, -0.04173691, -0.00081765, 0.02228966, 0.00681244,
	-0.01507291, -0.03599929, -0.07274477, -0.00891404, -0.00095914, -0.00623871, -0.00092115, 0.06769247,
	0.00211161, -0.01925115, 0.00076183, 0.02088220, 0.01091637, 0.00499045, -0.03792977, 0.03744971,
	0.00803945, 0.02885286, -0.01181866, -0.00825204, 0.03108550, -0.07193337, -0.01423393, -0.01493101,
	-0.00828755, -0.01300910, -0.02159129, 0.04518196, -0.05284075, 0.00804953, -0.01487506, -0.01580565,
	0.00750435, 0.03077714, -0.01340235, 0.01165732, 0.02726382, -0.00949007, 0.00461698, -0.04586084,
	-0.00742014, -0.03594129, -0.05724294, 0.04130607, -0.02319368, 0.00519498, 0.01249823, 0.04909017,
	0.00729337, 0.02246865, -0.02588955, -0.01039510, -0.03763657, -0.00669744, -0.01216160, 0.00434724,
	-0.04269228, -0.03029174, -0.03733751, 0.00858517, -0.06677471, 0.01008300, 0.01146796, -0.03727821,
	0.02522593, -0.02196959, -0.04129049, -0.04521573, 0.00143202, 0.00143761, 0.01027429, 0.02455109,
	-0.00762598, -0.02984714, 0.01940655, -0.00248720, -0.00259994, -0.01493004, -0.00604687, -0.00108158,
	0.01602572, -0.03490009, -0.03797259, 0.00698084, -0.05592591, 0.04401403, -0.05248945, -0.03009626,
	-0.03917689, -0.02338686, 0.01667952, 0.01923640, -0.00787407, 0.05502913, 0.02396838, -0.02016184,
	0.00439143, 0.04654218, 0.00186317, 0.01983338, 0.01840916, -0.02968690, -0.04488935, -0.01510954,
	0.02840747, 0.02435012, -0.07026281, 0.02796270, 0.00477625, -0.01800947, 0.00028781, 0.01873485,
	0.01956318, -0.00615452, 0.00745755, -0.01813414, 0.03447164, -0.00465635, 0.01060412, -0.00401870,
	0.00872696, 0.00120191, 0.01360693, 0.04837051, -0.01574029, -0.00429226, 0.01614428, 0.03774541,
	-0.00572153, 0.03939331, -0.02766094, -0.00384111, 0.06407962, -0.01350054, 0.01645136, 0.03740470,
	-0.00393173, -0.00258078, -0.04883630, 0.06256514, -0.01561046, -0.00322009, 0.04232305, 0.00717697,
	0.00769948, 0.01971894, 0.03176381, -0.02766056, 0.02402260, 0.02636726, -0.07390332, 0.00796221,
	-0.00852190, 0.02478559, 0.01339160, -0.01555895, 0.00424104, -0.02536458, 0.01031879, 0.02455204,
	-0.03742690, -0.01751723, -0.01385889, 0.01208021, 0.00207973, -0.00902978, -0.02779128, 0.00076358,
	-0.00577354, -0.00758194, 0.03043843, -0.05735194, -0.03354318, -0.05446691, 0.02561585, -0.02026103,
	0.01423217, 0.02850656, -0.02473996, -0.00638930, -0.00105366, 0.02429868, 0.02310857, -0.04383776,
	0.02692626, -0.01229064, -0.02814743, 0.03345586, -0.01089462, 0.03262109, -0.00932079, -0.00866563,
	0.04509555, 0.00307206, 0.02104561, -0.01235859, -0.06485435, 0.00924293, -0.05475012, -0.00305816,
	-0.00280674, 0.01018843, -0.00768827, 0.02854730, -0.00182515, 0.04730926, 0.00580252, 0.00584480,
	0.01098411, -0.02040012, -0.01475787, -0.05608332, 0.01532788, 0.01021197, 0.00666610, -0.01923124,
	0.01392128, -0.02887585, 0.05717223, 0.03526129, 0.02303329, -0.02913540, -0.03375658, 0.02656985,
	0.01983951, 0.00001103, -0.01461622, -0.01325879, 0.00883368, -0.03720627, 0.00866328, 0.01290625,
	-0.03048096, 0.00292866, -0.00028739, -0.01059906, 0.01162596, -0.03586629, -0.00268390, 0.00391191,
	0.01949844, -0.06617272, 0.02791237, -0.02521068, 0.02714555, 0.01693612, -0.02980515, 0.04032169,
	-0.01570351, -0.00165978, -0.03950969, -0.01840260, 0.03940845, -0.00500094, -0.00152528, -0.00716779,
	0.00993147, -0.00754900, -0.01081614, -0.02785540, 0.04379388, 0.01839856, -0.00102486, -0.01861576,
	0.00953083, -0.02977204, -0.00682482, 0.03859932, 0.00064182, -0.04300760, -0.01204515, -0.00679952,
	-0.00014263, -0.02907487, -0.00971888, 0.01656237, -0.00769675, -0.05526186, -0.03943227, 0.00178404,
	-0.00964852, -0.01851273, 0.03023635, 0.09851574, 0.01065770, -0.01767131, -0.00236002, 0.01415738,
	-0.00224824, -0.02904286, -0.00990455, -0.00681095, 0.00772800, 0.01687124, 0.00322443, -0.00547512,
	0.02964226, 0.00375929, 0.06349851, -0.02718424, 0.03154495, -0.03145688, 0.02985665, -0.03029847,
	-0.01031591, 0.03471302, 0.03572096, -0.03560491, 0.02440208, 0.01661652, 0.01348618, 0.01047593,
	0.01427620, -0.01829614, -0.02940878, 0.02879523, -0.08013243, 0.06539962, 0.01447834, 0.00183240,
	0.01017521, 0.01103123, -0.02220228, 0.00505299, -0.01212172, 0.04524849, -0.00956879, 0.00728937,
	-0.01814354, -0.02866035, 0.00014594, -0.04699151, 0.01725115, -0.03614343, -0.04539955, 0.00206377,
	0.00162371, 0.01826106, 0.05226984, -0.04166479, -0.02284311, -0.02843587, -0.01486403, -0.04367751,
	-0.04014423, -0.00927490, 0.00359310, -0.01633144, 0.03790169, -0.02035545, 0.01062922, -0.01412815,
	-0.00660703, -0.00795386, -0.05803094, 0.00849791, -0.01616855, 0.04415426, -0.01372838, -0.00529847,
	0.01278250, 0.01127850, 0.01794724, -0.01370293, 0.05994777, 0.00192945, -0.01368684, 0.01605222,
	0.03371078, 0.01625650, 0.02668386, 0.02345679, -0.03279512, -0.01992494, 0.04769870, 0.01287102,
	0.01354824, 0.00829673, -0.01213539, -0.02558081, 0.02583126, -0.00936072, -0.00714764, -0.00601109,
	0.00139638, -0.03364045, 0.02498803, -0.02350868, 0.03363139, 0.01462165, -0.05419378, 0.01534418,
	-0.00353933, 0.00144139, 0.03146577, 0.01289751, -0.01832897, -0.02171517, 0.00401707, -0.03215070,
	-0.03073062, -0.04378824, -0.00558594, 0.00277899, 0.02888040, -0.01232401, 0.00261447, 0.00424201,
	-0.01914469, -0.01296663, -0.00050753, -0.01354208, 0.00985728, 0.00583413, -0.00425444, -0.00174283,
	0.00269791, 0.03640411, 0.02593513, -0.03655299, -0.01849274, 0.03141039, -0.02427500, -0.00383854,
	-0.00362037, 0.02920017, 0.05213316, -0.04278343, 0.02510194, -0.00893421, 0.00767918, 0.02511789,
	0.02464768, 0.02585585, 0.02504961, 0.04618813, 0.00902114, -0.05180921, -0.04946992, -0.01764340,
	-0.01149043, -0.03863497, 0.06803904, -0.04128228, 0.00549378, 0.03165814, 0.01179977, 0.00580775,
	0.00610139, 0.02219484, -0.03309568, -0.00553519, -0.00074196, -0.02063119, -0.00713977, -0.00699769,
	-0.00527709, -0.00665785, 0.08255115, -0.04318126, 0.03770768, 0.00000927, 0.02508539, -0.01068440,
	0.00305960, 0.00305131, -0.01091061, 0.02987815, -0.02483685, -0.00835824, 0.02008955, 0.00819233,
	-0.00783180, -0.01682646, 0.01290091, -0.03364624, -0.00589566, 0.02301723, 0.00578301, 0.01594956,
	0.02264465, -0.01375553, -0.02876908, 0.05045965, 0.04568750, -0.02928537, -0.01909926, -0.01838102,
	-0.02192470, 0.02862088, -0.00886654, -0.06440778, 0.01826995, -0.00123261, -0.03585289, 0.01752861,
	0.00520798, 0.01006466, -0.07457852, 0.01614994, -0.00203822, 0.05200724, -0.04642523, -0.00087688,
	0.01783273, 0.00277491, -0.02104702, -0.06561297, 0.00327750, 0.00466007, -0.02571935, 0.00134562,
	0.00638324, 0.02122227, -0.03414372, -0.01072575, -0.03976362, 0.03048875, -0.01155098, 0.03939472,
	-0.00515910, 0.01705796, 0.00904844, 0.03849757, 0.01168983, 0.04310084, 0.00493043, -0.00622800,
	-0.00247773, -0.01805555, -0.01785658, 0.00485945, -0.05117393, 0.00362021, 0.00478403, -0.01760376,
	-0.01331199, 0.00865305, 0.00556318, 0.03616362, -0.01567121, -0.01081975, -0.01055149, -0.02707180,
	0.00587944, -0.01116873, -0.01963593, 0.03612251, 0.00297043, -0.01690936, 0.02996836, 0.03524554,
	0.01442257, -0.02620531, 0.03354209, 0.00394684, -0.04154180, -0.02764528, -0.00012026, 0.00034087,
	0.00862071, -0.03423070, 0.00166452, 0.01340884, -0.00930822, 0.00598444, 0.02088876, 0.00579281,
	-0.00335631, 0.01721677, -0.02610251, -0.04546602, -0.03893959, -0.00281433, 0.04355399, 0.06368841,
	0.01990007, 0.01040477, -0.05993136, -0.02886356, -0.03491168, 0.01153979, 0.05233567, -0.00231668,
}

// Second-stage LSP codebook (128 x 8).
var bv16LSPStage2 = [...]float64{
	0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000, 0.00000000,
	-0.00423523, -0.01374374, -0.02088884, -0.00767018, -0.00427475, 0.00576310, -0.01166935, 0.00708622,
	0.00388245, -0.00200660, -0.00589883, 0.00839058, 0.00398120, -0.01240963, -0.00368307, 0.01319438,
	-0.00495079, 0.00124678, 0.01840563, 0.02768683, -0.00336236, 0.00335576, 0.01389768, 0.01239577,
	0.01066408, 0.00422913, 0.01580966, 0.01659074, -0.02746198, 0.00737253, 0.00574082, 0.01127880,
	0.00633232, 0.01069348, -0.00130349, 0.01155648, 0.00630956, 0.00695818, 0.00211013, 0.00058615,
	0.00599749, 0.02081629, -0.00492653, -0.00766151, 0.00667133, 0.01605554, -0.00205772, -0.01245549,
	-0.00470131, -0.02112264, -0.02216565, 0.00241350, 0.01275541, -0.00904359, -0.00008371, -0.00427284,
	0.01677292, 0.00612421, -0.01042872, 0.01086174, -0.01672442, 0.00872138, 0.00393401, -0.00932181,
	0.00783288, -0.00490097, 0.01635426, -0.00774376, -0.00214919, 0.00009264, -0.01422614, -0.00604182,
	0.00460697, 0.01220514, -0.00021095, 0.00210560, 0.00308166, -0.00575587, -0.00494301, 0.00000469,
	-0.00031966, 0.00224499, 0.01195147, -0.02374865, 0.00423299, -0.00011367, -0.01463409, -0.01605762,
	-0.00946198, -0.01713959, 0.01727943, -0.00567445, 0.00072954, 0.01396911, 0.00830420, 0.00874508,
	0.00270893, 0.00050528, -0.00394425, -0.00737266, -0.00905129, 0.00448509, -0.00524132, 0.00024711,
	-0.00405672, 0.00497035, -0.00543275, 0.00836349, -0.00961379, -0.00280860, -0.00213764, 0.00015432,
	0.00023587, 0.00442377, 0.01947936, -0.03031707, 0.00611529, 0.01001074, 0.01619638, -0.00278861,
	0.01523831, 0.01248867, 0.00198803, -0.01421906, 0.00552113, 0.00705982, -0.00219942, 0.01213972,
	-0.00574744, -0.00487822, 0.02316299, -0.02394455, 0.01691386, -0.00074851, 0.00127348, -0.01938666,
	-0.00490179, 0.00727178, 0.00161312, 0.00926596, 0.00882105, 0.01205017, 0.00073024, 0.00684861,
	0.00436592, -0.00644460, -0.00795216, 0.00853354, -0.02191892, 0.01124969, 0.00257680, -0.00712654,
	-0.00025707, 0.00461642, -0.01495068, -0.02488756, -0.00024923, 0.00840981, 0.00874264, 0.01018886,
	0.00579206, 0.01012065, 0.00143533, 0.01061464, 0.01041819, 0.01712345, 0.00386385, 0.01425605,
	-0.00275961, -0.00095788, -0.00209817, 0.01465446, -0.00010591, -0.00388818, -0.00764155, -0.00473718,
	0.00781861, 0.00062542, 0.01073744, 0.01254411, -0.00079415, 0.00820095, -0.00857842, 0.01930723,
	-0.00899624, -0.01427578, 0.02591050, 0.00003984, 0.01623692, 0.00284928, -0.00021479, 0.01816817,
	-0.00542747, -0.00310294, -0.01819868, 0.00103979, -0.00657724, 0.01234807, -0.00092326, -0.00659503,
	-0.00371669, 0.00892517, -0.01389598, -0.00890734, 0.00090977, -0.00783511, -0.01238089, -0.01321612,
	-0.00282748, 0.00740275, -0.00491273, 0.00127854, -0.00864392, 0.00848592, 0.00063832, 0.00813523,
	-0.00804347, -0.01561532, -0.01696910, -0.00217530, -0.00611283, -0.00698447, 0.00757460, -0.01021184,
	-0.00409709, 0.00587287, 0.01025208, -0.00549440, -0.00989887, -0.00185097, -0.00786850, -0.01067294,
	-0.00800006, 0.00538883, 0.03916618, 0.00288200, 0.00204019, -0.01014606, 0.00651459, 0.00275089,
	0.00960418, 0.00200600, 0.00502310, -0.00626787, -0.00091096, -0.00838489, 0.01029693, -0.00607106,
	-0.00147162, 0.00819056, -0.01006588, 0.01437551, 0.01787949, 0.00161137, 0.00828511, 0.00393777,
	-0.00572610, -0.01214779, 0.02086997, 0.00606287, -0.00012055, 0.00036678, 0.00639775, -0.00211627,
	0.00317331, 0.00527834, 0.00583936, -0.01299924, 0.00728583, -0.00252249, -0.00173220, 0.00947679,
	0.00275827, -0.00096049, 0.00187932, 0.00667580, -0.00317047, 0.00909770, 0.01104366, -0.00149294,
	0.01062603, 0.01138951, -0.00131612, -0.00479038, -0.01106348, 0.01294645, 0.00259178, 0.00582415,
	-0.00732553, 0.01872546, 0.00852018, -0.00284664, -0.00117184, 0.02181977, 0.00181161, -0.00172748,
	0.01705366, -0.01341550, 0.01436803, -0.00949883, -0.00477420, -0.00462842, -0.00920320, 0.00062709,
	0.00554036, -0.01008830, -0.01651137, 0.02273356, 0.01474251, -0.00355599, 0.00789008, 0.02372906,
	0.01187577, 0.01407257, -0.01264252, 0.01460030, 0.00234151, -0.00891201, 0.00314980, -0.00821308,
	-0.00684227, -0.00259932, -0.00329452, 0.00153728, 0.00013412, 0.01052778, 0.00500788, 0.00384773,
	-0.00607341, 0.00705326, 0.01674473, 0.02284724, -0.01434637, -0.01057878, 0.00415883, 0.00860397,
	0.00004778, 0.03495356, 0.00944785, -0.00000344, -0.00503690, 0.00074990, 0.00907008, 0.00256362,
	0.00291481, -0.01356268, -0.00308742, -0.00428931, -0.01596622, -0.01288944, 0.00036797, 0.01271650,
	-0.00156380, 0.00508378, 0.03444046, -0.00317587, 0.00336643, 0.00216024, -0.00998669, 0.00522676,
	0.01094964, -0.00576755, 0.00481859, -0.00017754, -0.01526341, 0.01526482, -0.00156751, -0.01115951,
	0.00043417, -0.01361566, -0.00424806, -0.01314439, 0.00603122, -0.01333954, -0.01071659, 0.00435455,
	-0.01698311, 0.01488883, -0.00050180, -0.01950465, 0.00644279, -0.00537102, 0.01194254, 0.00154437,
	-0.00311515, -0.00253156, -0.01113501, 0.00877845, 0.02074451, -0.01217336, -0.00553401, -0.01639719,
	0.00248237, 0.00654352, 0.00388292, 0.00121145, -0.00722912, 0.00838242, 0.01318450, 0.01079144,
	-0.00029510, -0.00346173, -0.00766570, -0.00289026, 0.00250618, -0.01295403, -0.01197487, 0.01142690,
	0.00751545, -0.02174662, -0.01087998, -0.01429395, 0.00627969, 0.02226207, -0.01818251, 0.01108457,
	0.01023930, 0.00963399, 0.01467450, 0.00431157, 0.00054589, -0.00024803, -0.00026972, 0.00832692,
	-0.00881452, -0.00273042, 0.01367587, -0.01990113, -0.01304162, 0.00458435, -0.00501109, -0.00091336,
	-0.00305121, 0.00497434, 0.00742844, -0.00370390, 0.00119626, 0.00955418, -0.00372608, -0.00375941,
	0.00102493, 0.00198493, -0.00983569, -0.00296517, 0.00513185, -0.00442105, -0.00012306, 0.00780202,
	-0.01214298, 0.02216613, 0.01008193, 0.02006372, -0.01673983, -0.00377940, -0.00074692, 0.00373187,
	0.00626874, 0.01298188, -0.00752753, -0.02318518, -0.00887962, 0.00179900, -0.00292207, 0.00367497,
	0.00113488, 0.00811080, -0.01340651, 0.01154950, 0.00869133, -0.01066579, 0.01297604, -0.01481240,
	-0.00025500, -0.01885058, 0.00768462, 0.02414598, 0.02045465, -0.02141352, 0.01076364, 0.00117923,
	0.01237066, 0.00031359, 0.01009037, 0.00200205, -0.00386203, 0.01014367, 0.00989616, 0.00463983,
	0.00390281, -0.00466781, 0.00966499, 0.00183714, -0.00371779, 0.01353886, 0.00399304, -0.02130835,
	0.00170575, -0.01048028, -0.03174342, 0.01567326, 0.00926188, 0.00343468, 0.00140705, -0.01141437,
	-0.01165577, -0.00724708, -0.00429024, -0.00355304, -0.01531114, -0.00808455, -0.00365726, 0.01581603,
	0.00347322, -0.00982695, -0.01070697, -0.02066181, 0.00025623, -0.02581603, 0.00689885, -0.00319889,
	0.01301239, -0.00577121, 0.02900669, 0.00049441, 0.01419249, -0.00711269, 0.00186707, -0.01103672,
	-0.01022434, 0.01061340, 0.00892992, 0.00269793, -0.01613495, 0.00873035, -0.00799193, -0.00833393,
	0.00630524, 0.00620460, -0.01333502, 0.00022777, 0.02136424, 0.00725392, -0.01209024, 0.00541827,
	0.01255816, -0.01594948, -0.00151867, 0.00006935, -0.00318178, -0.00782657, 0.01151777, 0.01230980,
	-0.00596991, -0.02736823, -0.00317592, 0.01928810, -0.00864785, -0.00634218, 0.02178115, 0.00358668,
	0.00221043, 0.01200245, -0.01684825, -0.00923889, -0.01358294, -0.01183606, -0.00234021, 0.00544442,
	0.00175484, 0.00663162, -0.00437360, -0.00800491, 0.01171659, 0.00433147, 0.01153633, 0.00093636,
	-0.00515996, 0.00483001, -0.00251725, 0.01705365, -0.02352391, 0.00802137, 0.00602614, -0.00916055,
	0.00224322, -0.01298676, 0.01175604, -0.00181346, 0.01357235, 0.01133649, 0.00010629, 0.00069404,
	0.00515454, 0.01749783, -0.00999725, 0.00538347, -0.01576842, 0.00705705, 0.01207213, 0.00095780,
	0.00999462, -0.00508233, -0.01749603, -0.01531596, -0.00785982, -0.01056378, -0.00612360, -0.01144395,
	0.00273805, 0.00874034, -0.00032186, -0.00041241, -0.01211435, -0.00606298, 0.00172483, 0.01231075,
	0.01634355, -0.01147859, -0.00000659, -0.01746411, 0.02741314, -0.02089346, 0.00830749, 0.01217422,
	0.02144079, -0.00663876, -0.00050883, -0.00258936, -0.00124009, 0.00215644, 0.00001011, -0.00935885,
	0.00070540, -0.00651247, -0.00206668, 0.00892449, -0.00431680, 0.00054794, 0.00163059, -0.00636143,
	-0.01612995, -0.01127413, 0.00416525, -0.02181447, -0.01149045, 0.00493980, 0.01179312, -0.00314694,
	-0.01064358, -0.00368690, 0.01139837, 0.01444859, -0.01316923, -0.00561489, -0.01819975, -0.00434925,
	0.00700835, -0.00744132, 0.00573537, -0.02533287, 0.00670181, 0.00502493, 0.00470644, 0.00277126,
	0.00474766, -0.00347272, 0.00016206, 0.00898651, -0.01552279, 0.01348982, -0.00051495, 0.00006113,
	0.00493443, -0.00793899, 0.00230426, -0.00902435, -0.00670958, -0.00687151, -0.00395202, -0.00098351,
	0.00414546, 0.00776065, 0.00122977, -0.00125758, -0.01228668, -0.00584430, 0.02316350, 0.00960593,
	0.00639700, -0.00285531, -0.00373163, -0.00241057, 0.01741722, -0.00957694, -0.00393967, 0.00476924,
	0.00216811, 0.00295889, 0.00526400, 0.02165567, 0.02781341, -0.02733201, 0.01267406, 0.00107099,
	-0.00231374, -0.00156839, 0.00348585, 0.01303299, 0.02147064, -0.00566595, -0.01332962, -0.00281240,
	-0.00566088, 0.00322211, -0.01645420, 0.01019242, -0.00967613, -0.00184900, 0.00466095, 0.00562527,
	0.00282252, 0.00892695, -0.01256887, 0.00690827, -0.00294084, -0.00441309, 0.00389822, -0.00807889,
	-0.00922242, 0.00320814, 0.00889776, -0.01195464, -0.01353627, -0.01795510, 0.02306521, -0.00865487,
	0.00648807, 0.00708690, -0.01546458, -0.01442802, -0.01274954, -0.02338314, -0.00353014, 0.00269741,
	-0.01278149, 0.00904606, 0.01521297, -0.02009639, 0.00358973, 0.00785126, 0.00628494, 0.00821982,
	0.00336057, -0.00568648, 0.00065568, 0.01887990, 0.00293112, 0.01987625, 0.00850446, 0.00699580,
	-0.00205513, -0.00892092, -0.00846493, 0.00474782, -0.01553061, -0.00574407, -0.00404854, -0.01331151,
	0.00271248, 0.00623018, 0.00345685, -0.00467045, 0.00669623, -0.00320811, -0.01454855, 0.01350858,
	-0.01706071, -0.01404714, -0.01027084, -0.00094620, -0.00260238, 0.00647120, 0.01540239, -0.01863681,
	0.00624096, -0.00183217, 0.00772156, -0.00149499, 0.00397658, -0.00214115, -0.01056265, 0.00580654,
	-0.01494950, 0.00667598, 0.01005612, 0.01580457, 0.00355204, 0.00250264, 0.00879827, -0.00840195,
	-0.00687203, -0.01034102, 0.00221921, -0.00732123, 0.00782064, -0.00245460, 0.00985703, 0.02250778,
	-0.00851172, -0.01552241, 0.00750880, -0.00138376, -0.00685699, -0.00809808, 0.00458793, -0.01126907,
	-0.01037666, -0.01808126, -0.00403891, -0.00062000, -0.01296917, 0.01040080, -0.02623549, 0.00869244,
	0.00141079, 0.00440717, -0.00512908, 0.00994190, 0.01508189, 0.00945686, -0.00815002, 0.00118450,
	0.00421479, -0.00725609, 0.00655827, 0.00325306, 0.01327049, -0.00301661, -0.01115704, 0.00163417,
	-0.00096838, 0.00789139, -0.01737280, 0.00525607, 0.01607327, 0.01770468, -0.00374291, -0.00157996,
	-0.00339373, 0.00493754, 0.00662541, -0.03231694, -0.00464208, 0.00309066, 0.01044777, 0.01728468,
	0.00373144, 0.00043718, -0.00511741, 0.00791463, 0.01052806, -0.01131040, -0.00326445, -0.00771728,
	0.00430706, 0.00627208, 0.00949507, 0.00779668, 0.00753394, 0.00456644, -0.01206077, 0.00174550,
	-0.00002161, -0.01197679, -0.00257558, -0.00405644, 0.00687601, 0.02256976, -0.00199768, -0.00757272,
	-0.00044712, -0.01014279, 0.00018945, 0.00827067, 0.00363177, -0.00836909, 0.00796754, -0.00059394,
	0.00378835, -0.00793834, 0.01228437, -0.00888064, 0.00066969, -0.00874042, -0.00328878, 0.00080384,
	0.00613687, -0.00425687, -0.00712746, 0.00367570, -0.01125553, 0.02359801, -0.00647815, 0.01268856,
	0.00713134, -0.00920042, 0.01875559, 0.00529100, 0.00653800, 0.01209563, 0.01185203, -0.00959124,
	-0.00789778, -0.00448625, -0.01744247, 0.01085583, -0.00996192, 0.01034163, 0.01598155, 0.01035041,
	-0.00162010, -0.00721117, -0.02578240, -0.00690352, -0.02075703, 0.01292158, 0.01692316, 0.01088125,
	-0.00957396, -0.01835745, 0.00345259, 0.01268375, 0.01639377, -0.01030587, 0.01240676, 0.00160466,
	0.01341392, -0.00914889, 0.01770485, 0.00901695, 0.01168154, 0.01323820, -0.01459465, 0.00774201,
	-0.00307283, -0.00833445, 0.00149999, 0.01089713, -0.00221681, -0.00280576, -0.00145434, 0.00300404,
	0.00523278, 0.01269342, 0.00514164, 0.01224196, 0.02273754, -0.00406208, 0.00709012, 0.00337524,
	-0.00503943, 0.02139646, -0.00788703, -0.00984774, 0.00300762, 0.00005196, 0.01328089, 0.01421129,
	0.00488775, -0.00292838, 0.02115660, -0.02204738, -0.00223849, 0.01019252, 0.01379116, -0.00109436,
	-0.00250656, -0.00993767, 0.00181318, -0.00583703, -0.00890998, -0.00466911, 0.00545291, 0.00366230,
	-0.00908180, -0.01275757, 0.00858897, -0.00993200, 0.00261889, 0.00646898, -0.00419571, -0.00065794,
	0.00670329, 0.01518791, -0.02664621, -0.00006930, -0.00503751, -0.01786917, -0.00648838, -0.00465727,
	-0.00541032, 0.00466189, 0.00503358, 0.01123298, 0.02598815, -0.00349690, 0.01722693, -0.00543768,
	0.00109948, 0.00365420, 0.00306612, -0.00327846, 0.01341983, -0.00089946, 0.00222079, 0.00552035,
}

// Three-tap pitch predictor codebook. Each row holds 2b0, 2b1, 2b2, -b0^2, -b1^2, -b2^2, -2b0b1, -2b1b2, -2b0b2.
var bv16PitchTapCB = [...]float64{
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
var bv16GainPredictor = [...]float64{
	0.24000000, 0.14000000, 0.09000000, 0.05000000, 0.03500000, 0.02000000, 0.01500000, 0.01000000,
}

// Log-gain prediction error codebook.
var bv16GainCB = [...]float64{
	-8.00000000, 0.70000000, 1.50000000, -6.50000000, -5.10000000, 2.40000000, 3.40000000, -3.90000000,
	-2.80000000, 4.50000000, 5.80000000, -1.80000000, -0.90000000, 7.30000000, 9.20000000, -0.10000000,
}

// Codebook indices of bv16GainCB in ascending order of value.
var bv16GainOrder = [...]int{
	0, 3, 4, 7, 8, 11, 12, 15, 1, 2, 5, 6, 9, 10, 13, 14,
}

// Next higher bv16GainCB value for each index (the largest maps to itself).
var bv16GainNextHigher = [...]float64{
	-6.50000000, 1.50000000, 2.40000000, -5.10000000, -3.90000000, 3.40000000, 4.50000000, -2.80000000,
	-1.80000000, 5.80000000, 7.30000000, -0.90000000, -0.10000000, 9.20000000, 9.20000000, 0.70000000,
}

// Maximum log-gain increase, indexed by level-relative gain (rows) and previous gain change (columns).
var bv16GainLimit = [...]float64{
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

// Excitation shape codebook (16 x 4); the sign is coded separately.
var bv16ExcitationCB = [...]float64{
	0.58178877, -0.94197227, 1.83413195, 0.70213233,
	1.60803992, 0.42301305, -0.87740471, -0.92623162,
	1.07762109, -0.98887957, -1.37543754, -0.42942281,
	-0.42104608, -1.01019793, -0.46353703, 1.63873937,
	-0.45677913, -1.77938283, -0.66418381, -0.26220078,
	-0.34903230, 1.72061162, -0.43946861, 0.75461491,
	1.57174488, 0.57902166, 0.92881845, 0.04876370,
	-1.51116430, -0.77631343, 0.54577750, -0.68266161,
	1.33255523, -0.46697638, 0.65758391, -1.05359806,
	0.09710646, 0.66338108, 0.46873938, 1.58816823,
	0.70071883, -1.37748842, -0.56874818, 0.66951773,
	1.21934805, -0.44877956, 0.24888789, 1.13688242,
	0.43649482, 0.18619311, -1.31900260, 0.96978508,
	-0.33984207, -0.44775658, -1.33131381, -0.06898237,
	0.29309687, 0.91081215, -0.62226520, -0.34369708,
	0.54608873, -0.09526094, 0.02285708, -0.29001089,
}
