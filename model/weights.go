package model

// Short aliases keep the packed keys below readable.
const (
	cO = uint64(Other)
	cM = uint64(IdeographicNumber)
	cH = uint64(Ideographic)
	cI = uint64(Hiragana)
	cK = uint64(Katakana)
	cA = uint64(Alphabetic)
	cN = uint64(Numeric)

	pU = uint64(Unknown)
	pO = uint64(NoBreak)
	pB = uint64(Break)
)

// weights holds the trained TinySegmenter model, one sparse table per
// feature. Keys are packed the way pack2..pack4 and units2..units3 pack them
// at lookup time; a missing key weighs zero.
var weights = [numFeatures]map[uint64]int32{
	// unigram context cost for n-3
	up1: {
		pO: -214,
	},
	// unigram context cost for n-2
	up2: {
		pB: 69,
		pO: 935,
	},
	// unigram context cost for n-1
	up3: {
		pB: 189,
	},
	// bigram context cost for (n-3, n-2)
	bp1: {
		pB<<3 | pB: 295,
		pU<<3 | pB: 352,
		pO<<3 | pB: 304,
		pO<<3 | pO: -125,
	},
	// bigram context cost for (n-2, n-1)
	bp2: {
		pB<<3 | pO: 60,
		pO<<3 | pO: -1762,
	},
	// unigram character cost for n-3
	uw1: {
		0x4eac: -268, // 京
		0x3042: -941, // あ
		0x59d4: 729,  // 委
		0x3046: -127, // う
		0x304c: -553, // が
		0x304d: 121,  // き
		0xff62: -463, // ｢
		0x3053: 505,  // こ
		0xff65: -135, // ･
		0x5927: 561,  // 大
		0x533a: -912, // 区
		0x5e02: -411, // 市
		0x3001: 156,  // 、
		0x56fd: -460, // 国
		0x5348: 871,  // 午
		0x3067: -201, // で
		0x3068: -547, // と
		0x3069: -123, // ど
		0x002c: 156,  // ,
		0x306b: -789, // に
		0x300c: -463, // 「
		0x306e: -185, // の
		0x306f: -847, // は
		0x65e5: -141, // 日
		0x751f: -408, // 生
		0x7406: 361,  // 理
		0x90fd: -718, // 都
		0x3082: -466, // も
		0x3084: -470, // や
		0x3088: 182,  // よ
		0x3089: -292, // ら
		0x770c: -386, // 県
		0x308a: 208,  // り
		0x4e3b: -402, // 主
		0x308c: 169,  // れ
		0x3092: -446, // を
		0x3093: -137, // ん
		0x30fb: -135, // ・
	},
	// unigram character cost for n-2
	uw2: {
		0x63fa: -1033, // 揺
		0x5e02: -813,  // 市
		0x3082: -1263, // も
		0x4f1a: 978,   // 会
		0x3084: -402,  // や
		0x4fdd: 362,   // 保
		0x3088: 1639,  // よ
		0x6700: -630,  // 最
		0x308a: -579,  // り
		0x521d: -3025, // 初
		0x308b: -694,  // る
		0x308c: 571,   // れ
		0x6587: -1355, // 文
		0x7b2c: 810,   // 第
		0x5165: 548,   // 入
		0x3092: -2516, // を
		0x3093: 2095,  // ん
		0x81ea: -1353, // 自
		0x30a2: -587,  // ア
		0x671d: -1843, // 朝
		0x002c: -829,  // ,
		0x30ab: 306,   // カ
		0x30ad: 568,   // キ
		0x4e8b: 492,   // 事
		0x672c: -1650, // 本
		0x897f: -744,  // 西
		0x65b0: -1682, // 新
		0xff62: -645,  // ｢
		0xff63: 3145,  // ｣
		0x3001: -829,  // 、
		0x898b: -3874, // 見
		0x30c3: 831,   // ッ
		0xff6f: 831,   // ｯ
		0x5317: -3414, // 北
		0x3007: 892,   // 〇
		0xff71: -587,  // ｱ
		0x5c0f: -2009, // 小
		0x5b50: -1519, // 子
		0x300c: -645,  // 「
		0xff76: 306,   // ｶ
		0x300d: 3145,  // 」
		0x76ee: -1584, // 目
		0xff77: 568,   // ｷ
		0x958b: 1758,  // 開
		0x76f8: -242,  // 相
		0x9593: -1257, // 間
		0x526f: -1566, // 副
		0x5927: -1769, // 大
		0x5b66: 760,   // 学
		0x5929: -865,  // 天
		0x592a: -483,  // 太
		0x7406: 752,   // 理
		0x4eba: -123,  // 人
		0x533a: -422,  // 区
		0x770c: -1165, // 県
		0x65e5: -1815, // 日
		0x7acb: -763,  // 立
		0x6b21: -2378, // 次
		0x4e09: -758,  // 三
		0x5e74: -1060, // 年
		0x4e0d: -2150, // 不
		0x5f37: 1067,  // 強
		0x6771: -931,  // 東
		0x8fbc: 3041,  // 込
		0x4e16: -302,  // 世
		0x3042: -538,  // あ
		0x884c: 838,   // 行
		0x3044: 505,   // い
		0x3046: 134,   // う
		0x653f: 1522,  // 政
		0x304a: -502,  // お
		0x304b: 1454,  // か
		0x304c: -856,  // が
		0x624b: -1519, // 手
		0x304f: -412,  // く
		0x3053: 1141,  // こ
		0x4e2d: -968,  // 中
		0x3055: 878,   // さ
		0x3056: 540,   // ざ
		0x660e: -1462, // 明
		0x3057: 1529,  // し
		0x767a: 529,   // 発
		0x5b9f: 1023,  // 実
		0x3059: -675,  // す
		0x7c73: 509,   // 米
		0x305b: 300,   // せ
		0x305d: -1011, // そ
		0x305f: 188,   // た
		0x3060: 1837,  // だ
		0x6c11: -180,  // 民
		0x4e3b: -861,  // 主
		0x3064: -949,  // つ
		0x3066: -291,  // て
		0x679c: -665,  // 果
		0x3067: -268,  // で
		0x6c17: -1740, // 気
		0x3068: -981,  // と
		0x3069: 1273,  // ど
		0x306a: 1063,  // な
		0x8b70: 1198,  // 議
		0x306b: -1764, // に
		0x306e: 130,   // の
		0x306f: -409,  // は
		0x3072: -1273, // ひ
		0x8abf: 1010,  // 調
		0x3079: 1261,  // べ
		0x307e: 600,   // ま
	},
	// unigram character cost for n-1
	uw3: {
		0x0031: -800,  // 1
		0x4f4e: 811,   // 低
		0x524d: 2286,  // 前
		0x95a2: -1282, // 関
		0x4f55: 4265,  // 何
		0x4f5c: -361,  // 作
		0x674e: 3094,  // 李
		0x6751: 364,   // 村
		0x8cbb: 1777,  // 費
		0x53e3: 483,   // 口
		0x8fbc: -1504, // 込
		0x7acb: -960,  // 立
		0x3001: 4889,  // 、
		0x5b66: -1356, // 学
		0x7dcf: 1163,  // 総
		0x3005: -2311, // 々
		0x526f: 4437,  // 副
		0x3007: 5827,  // 〇
		0x65e5: 2099,  // 日
		0x65e7: 5792,  // 旧
		0x53f3: 1233,  // 右
		0x002c: 4889,  // ,
		0x300d: 2670,  // 」
		0x7dda: 1255,  // 線
		0x5e73: -1804, // 平
		0x5e74: 2416,  // 年
		0x3013: -3573, // 〓
		0x4e00: -1619, // 一
		0x68ee: 2438,  // 森
		0x77e5: -1528, // 知
		0x6771: -805,  // 東
		0x56fd: 642,   // 国
		0x5404: 3588,  // 各
		0x4e0b: -1759, // 下
		0x5408: -241,  // 合
		0x6d77: -495,  // 海
		0x5e83: -1030, // 広
		0x975e: 2066,  // 非
		0x540c: 3906,  // 同
		0x5b89: -423,  // 安
		0x7c73: 7767,  // 米
		0x6307: -3973, // 指
		0x4e16: -2087, // 世
		0x529b: 365,   // 力
		0x7684: 7313,  // 的
		0x80fd: 725,   // 能
		0x4e21: 3815,  // 両
		0x6c0f: 2613,  // 氏
		0x6c11: -1694, // 民
		0x5e9c: 1605,  // 府
		0x5b9f: -1008, // 実
		0x601d: -1291, // 思
		0x4e2d: 653,   // 中
		0x3042: -2696, // あ
		0x3044: 1006,  // い
		0x5ea6: 1452,  // 度
		0x3046: 2342,  // う
		0x6027: 1822,  // 性
		0x3048: 1983,  // え
		0x304a: -4864, // お
		0x304b: -1163, // か
		0x6628: -661,  // 昨
		0x304c: 3271,  // が
		0x751f: -273,  // 生
		0x4e3b: -758,  // 主
		0x304f: 1004,  // く
		0x3051: 388,   // け
		0x3052: 401,   // げ
		0x5bb6: 1078,  // 家
		0x3053: -3552, // こ
		0x3054: -3116, // ご
		0x3055: -1058, // さ
		0x7528: 914,   // 用
		0x3057: -395,  // し
		0x5143: 4858,  // 元
		0x3059: 584,   // す
		0x901a: -1136, // 通
		0x305b: 3685,  // せ
		0x305d: -5228, // そ
		0x7b2c: 1201,  // 第
		0x305f: 842,   // た
		0x3061: -521,  // ち
		0x3063: -1444, // っ
		0x3064: -1081, // つ
		0x3066: 6167,  // て
		0x6642: -1248, // 時
		0x3067: 2318,  // で
		0x3068: 1691,  // と
		0x753a: 1215,  // 町
		0x3069: -899,  // ど
		0x306a: -2788, // な
		0x306b: 2745,  // に
		0x52d5: -949,  // 動
		0x306e: 4056,  // の
		0x306f: 4555,  // は
		0x52d9: -1872, // 務
		0x515a: 3593,  // 党
		0x3072: -2171, // ひ
		0x4fdd: -2439, // 保
		0x79c1: 4231,  // 私
		0x3075: -1798, // ふ
		0x3078: 1199,  // へ
		0x307b: -5516, // ほ
		0x307e: -4384, // ま
		0x5168: 1574,  // 全
		0x307f: -120,  // み
		0x3081: 1205,  // め
		0x516c: -3030, // 公
		0x3082: 2323,  // も
		0x516d: 755,   // 六
		0x3084: -788,  // や
		0x5171: -1880, // 共
		0x3088: -202,  // よ
		0x3089: 727,   // ら
		0x8eca: 1835,  // 車
		0x308a: 649,   // り
		0x308b: 5905,  // る
		0x308c: 2773,  // れ
		0x8ecd: 1375,  // 軍
		0x308f: -1207, // わ
		0x3092: 6620,  // を
		0x91d1: 2163,  // 金
		0x3093: -518,  // ん
		0x696d: 484,   // 業
		0x7269: 461,   // 物
		0x5efa: -2352, // 建
		0xff11: -800,  // １
		0x5186: 5807,  // 円
		0x4e88: -1193, // 予
		0x4e8c: 974,   // 二
		0x30a2: 551,   // ア
		0x6c7a: -1073, // 決
		0x518d: 3095,  // 再
		0x76f4: -1835, // 直
		0x548c: -837,  // 和
		0x578b: 1389,  // 型
		0x7279: -3850, // 特
		0x82f1: 785,   // 英
		0x5c0f: -513,  // 小
		0x5316: 1327,  // 化
		0x5c11: -3102, // 少
		0x5317: -1038, // 北
		0x7cfb: 3066,  // 系
		0x30b0: 1319,  // グ
		0x7701: 792,   // 省
		0x5916: -241,  // 外
		0x7d04: 3663,  // 約
		0x9078: -681,  // 選
		0x30b9: 874,   // ス
		0x8005: 6457,  // 者
		0x770c: 6293,  // 県
		0x7a0e: 401,   // 税
		0x30c3: -1350, // ッ
		0x30c8: 521,   // ト
		0x7121: 979,   // 無
		0x7d1a: 1384,  // 級
		0x4eba: 2742,  // 人
		0x533a: 4646,  // 区
		0x6238: -488,  // 戸
		0x5343: -2309, // 千
		0x6838: 5156,  // 核
		0x4eca: 792,   // 今
		0x5348: -783,  // 午
		0x30e0: 1109,  // ム
		0x653f: -2013, // 政
		0x4ed6: 1889,  // 他
		0x5354: -1006, // 協
		0x30eb: 1591,  // ル
		0x30ed: 2201,  // ロ
		0xff63: 2670,  // ｣
		0xff65: -3794, // ･
		0x5f53: -3885, // 当
		0x30f3: 278,   // ン
		0x54e1: 4513,  // 員
		0x4ee5: -1368, // 以
		0xff6f: -1350, // ｯ
		0x30fb: -3794, // ・
		0x8abf: -562,  // 調
		0xff71: 551,   // ｱ
		0x6559: -1479, // 教
		0x5dde: 1155,  // 州
		0x6cd5: 1868,  // 法
		0x66dc: -951,  // 曜
		0xff7d: 874,   // ｽ
		0x2212: -1723, // −
		0x99c5: 1620,  // 駅
		0x90ce: 1026,  // 郎
		0xff84: 521,   // ﾄ
		0x6570: 3222,  // 数
		0xff91: 1109,  // ﾑ
		0x5206: 457,   // 分
		0x5e02: 3197,  // 市
		0x81ea: -2869, // 自
		0x90e1: 4404,  // 郡
		0xff99: 1591,  // ﾙ
		0x6700: -937,  // 最
		0x7d71: -4229, // 統
		0xff9b: 2201,  // ﾛ
		0xff9d: 278,   // ﾝ
		0x90e8: 1200,  // 部
		0x6587: -1489, // 文
		0x6708: 4125,  // 月
		0x96e8: 2009,  // 雨
		0x521d: 2475,  // 初
		0x5f97: 1905,  // 得
		0x9577: 421,   // 長
		0x5225: 1129,  // 別
		0x96fb: -1045, // 電
		0x671f: 360,   // 期
		0x898b: 1044,  // 見
		0x5834: 1219,  // 場
		0x958b: -1432, // 開
		0x65b0: 1764,  // 新
		0x59bb: 2016,  // 妻
		0x9593: 1302,  // 間
		0x8ca1: -733,  // 財
	},
	// unigram character cost for n
	uw4: {
		0x822c: -852,   // 般
		0x524d: 1623,   // 前
		0x4f53: -1286,  // 体
		0x5b50: -4802,  // 子
		0x4f5c: 530,    // 作
		0x56de: 1500,   // 回
		0x8fbc: -3370,  // 込
		0x7acb: -2112,  // 立
		0x3001: 3930,   // 、
		0x3002: 3508,   // 。
		0x5b66: -1397,  // 学
		0x7dcf: 940,    // 総
		0x526f: 3879,   // 副
		0x3007: 4999,   // 〇
		0x884c: -792,   // 行
		0x65e5: 1798,   // 日
		0x6765: -442,   // 来
		0x300c: 1895,   // 「
		0x002c: 3930,   // ,
		0x300d: 3798,   // 」
		0x002e: 3508,   // .
		0x7dda: -994,   // 線
		0x8fd1: 929,    // 近
		0x5e74: 374,    // 年
		0x3013: -5156,  // 〓
		0x5cf6: -2056,  // 島
		0x4e00: -2069,  // 一
		0x56fd: -619,   // 国
		0x8cde: 730,    // 賞
		0x5e81: -4556,  // 庁
		0x5408: -1834,  // 合
		0x8b66: -1184,  // 警
		0x7c73: 2937,   // 米
		0x7f72: 749,    // 署
		0x5712: -1200,  // 園
		0x8b70: -244,   // 議
		0x529b: -302,   // 力
		0x7684: 2586,   // 的
		0x80fd: -730,   // 能
		0x7387: 672,    // 率
		0x5b9a: -1057,  // 定
		0x6c0f: 5388,   // 氏
		0x6c11: -2716,  // 民
		0x6c17: -910,   // 気
		0x4e2d: 2210,   // 中
		0x3042: 4752,   // あ
		0x3044: -3435,  // い
		0x3046: -640,   // う
		0x6027: 553,    // 性
		0x3048: -2514,  // え
		0x5730: 866,    // 地
		0x304a: 2405,   // お
		0x304b: 530,    // か
		0x304c: 6006,   // が
		0x304d: -4482,  // き
		0x751f: -1286,  // 生
		0x304e: -3821,  // ぎ
		0x304f: -3788,  // く
		0x3051: -4376,  // け
		0x7523: -1101,  // 産
		0x3052: -4734,  // げ
		0x3053: 2255,   // こ
		0x3054: 1979,   // ご
		0x3055: 2864,   // さ
		0x3057: -843,   // し
		0x3058: -2506,  // じ
		0x3059: -731,   // す
		0x305a: 1251,   // ず
		0x305b: 181,    // せ
		0x305d: 4091,   // そ
		0x5148: 601,    // 先
		0x7530: -2900,  // 田
		0x7b2c: 788,    // 第
		0x305f: 5034,   // た
		0x3060: 5408,   // だ
		0x3061: -3654,  // ち
		0x3063: -5882,  // っ
		0x3064: -1659,  // つ
		0x3066: 3994,   // て
		0x6642: 1829,   // 時
		0x3067: 7410,   // で
		0x3068: 4547,   // と
		0x753a: 1826,   // 町
		0x306a: 5433,   // な
		0x306b: 6499,   // に
		0x306c: 1853,   // ぬ
		0x52d5: -740,   // 動
		0x306d: 1413,   // ね
		0x306e: 7396,   // の
		0x9928: -1984,  // 館
		0x306f: 8578,   // は
		0x3070: 1940,   // ば
		0x52d9: -2715,  // 務
		0x515a: -2006,  // 党
		0x3072: 4249,   // ひ
		0x3073: -4134,  // び
		0x3075: 1345,   // ふ
		0x3078: 6665,   // へ
		0x3079: -744,   // べ
		0x307b: 1464,   // ほ
		0x307e: 1051,   // ま
		0x307f: -2082,  // み
		0x3080: -882,   // む
		0x3081: -5046,  // め
		0x3082: 4169,   // も
		0x3083: -2666,  // ゃ
		0x3084: 2795,   // や
		0x58eb: -1413,  // 士
		0x5171: -1212,  // 共
		0x3087: -1544,  // ょ
		0x3088: 3351,   // よ
		0x3089: -2922,  // ら
		0x8eca: -1481,  // 車
		0x308a: -9726,  // り
		0x2015: -4841,  // ―
		0x308b: -14896, // る
		0x308c: -2613,  // れ
		0x8ecd: 1158,   // 軍
		0x308d: -4570,  // ろ
		0x308f: -1783,  // わ
		0x91ce: -1100,  // 野
		0x3092: 13150,  // を
		0x3093: -2352,  // ん
		0x696d: -1043,  // 業
		0x9053: -1291,  // 道
		0x7269: -735,   // 物
		0x5bfa: -809,   // 寺
		0x5185: 584,    // 内
		0x5186: 788,    // 円
		0x4e88: 782,    // 予
		0x76ee: 922,    // 目
		0x4e8b: -190,   // 事
		0x9ad8: 2120,   // 高
		0x548c: -681,   // 和
		0x9662: -2297,  // 院
		0x4e95: -1768,  // 井
		0x30ab: 2145,   // カ
		0x5c0f: 1910,   // 小
		0x5316: 776,    // 化
		0x7cfb: 786,    // 系
		0x7403: -1267,  // 球
		0x7701: -3485,  // 省
		0x6e08: -543,   // 済
		0x30b3: 1789,   // コ
		0x591a: 1067,   // 多
		0x7d04: 2171,   // 約
		0x9078: 2596,   // 選
		0x8005: 2145,   // 者
		0x30bb: 1287,   // セ
		0x770c: 2997,   // 県
		0x5927: 571,    // 大
		0x30c3: -724,   // ッ
		0x6821: -360,   // 校
		0x30c8: -403,   // ト
		0x6ca2: -939,   // 沢
		0x4eba: 1036,   // 人
		0x533a: 4517,   // 区
		0x652f: 856,    // 支
		0x6539: 787,    // 改
		0x9996: 1749,   // 首
		0x9818: -1659,  // 領
		0x969b: -2604,  // 際
		0x6240: -1566,  // 所
		0x30e1: -1635,  // メ
		0x653f: 2182,   // 政
		0x5c4b: -1328,  // 屋
		0x30e9: -881,   // ラ
		0x8f2a: -1433,  // 輪
		0x30ea: -541,   // リ
		0x5354: 1013,   // 協
		0x30eb: -856,   // ル
		0xff62: 1895,   // ｢
		0xff63: 3798,   // ｣
		0xff65: -4371,  // ･
		0x30f3: -3637,  // ン
		0x8c37: -1000,  // 谷
		0x54e1: -910,   // 員
		0x4ee5: 544,    // 以
		0xff6f: -724,   // ｯ
		0xff70: -11870, // ｰ
		0x5ddd: -2667,  // 川
		0x30fb: -4371,  // ・
		0x6559: 704,    // 教
		0x30fc: -11870, // ー
		0x7d4c: 1146,   // 経
		0xff76: 2145,   // ｶ
		0x5668: -851,   // 器
		0xff7a: 1789,   // ｺ
		0xff7e: 1287,   // ｾ
		0x5074: 4292,   // 側
		0x5c71: -1500,  // 山
		0x90ce: -4866,  // 郎
		0xff84: -403,   // ﾄ
		0x984c: -792,   // 題
		0xff92: -1635,  // ﾒ
		0x5e02: 2771,   // 市
		0xff97: -881,   // ﾗ
		0xff98: -541,   // ﾘ
		0xff99: -856,   // ﾙ
		0x6700: 845,    // 最
		0x7d71: -1169,  // 統
		0xff9d: -3637,  // ﾝ
		0x6587: 522,    // 文
		0x5f8c: 456,    // 後
		0x7a7a: -867,   // 空
		0x6708: -9066,  // 月
		0x4f1a: 950,    // 会
		0x521d: 1347,   // 初
		0x9577: 357,    // 長
		0x90fd: 1192,   // 都
		0x611f: 916,    // 感
		0x96fb: -878,   // 電
		0x9280: -2213,  // 銀
		0x898f: 792,    // 規
		0x6728: -485,   // 木
		0x5834: -1410,  // 場
		0x9593: -2344,  // 間
		0x53c2: 1555,   // 参
		0x5841: -2094,  // 塁
		0x65b9: -856,   // 方
	},
	// unigram character cost for n+1
	uw5: {
		0x307f: 502,    // み
		0x5e02: -2991,  // 市
		0x0031: -514,   // 1
		0x3081: 865,    // め
		0x3083: 3350,   // ゃ
		0x4f1a: -1153,  // 会
		0x515a: -654,   // 党
		0x3087: 854,    // ょ
		0x52d9: 3519,   // 務
		0x308a: -208,   // り
		0x308b: 429,    // る
		0x308c: 504,    // れ
		0x5d50: -1304,  // 嵐
		0x7530: 240,    // 田
		0x308f: 419,    // わ
		0x90ce: -368,   // 郎
		0x6708: -4353,  // 月
		0x3092: -1264,  // を
		0x3093: 327,    // ん
		0x753a: -3912,  // 町
		0x984c: 2368,   // 題
		0x7d71: 1955,   // 統
		0x7a7a: -813,   // 空
		0x30a4: 241,    // イ
		0x5e2d: 921,    // 席
		0x002c: 465,    // ,
		0x002e: -299,   // .
		0x9928: -689,   // 館
		0x65b0: -1682,  // 新
		0xff62: 363,    // ｢
		0x9577: 786,    // 長
		0x3001: 465,    // 、
		0x3002: -299,   // 。
		0x67fb: 932,    // 査
		0xff72: 241,    // ｲ
		0x300c: 363,    // 「
		0x4eac: 722,    // 京
		0x76f8: 1319,   // 相
		0xe005: -32768, // E2
		0x9593: 1191,   // 間
		0x005d: -2762,  // ]
		0x5927: -1296,  // 大
		0x5b66: -548,   // 学
		0x7701: -1052,  // 省
		0x793e: -278,   // 社
		0x533a: -901,   // 区
		0x770c: -4003,  // 県
		0x30eb: 451,    // ル
		0x65e5: 218,    // 日
		0x6a5f: -1508,  // 機
		0xff99: 451,    // ﾙ
		0x8005: -2233,  // 者
		0x5e74: 1763,   // 年
		0xff9d: -343,   // ﾝ
		0x30f3: -343,   // ン
		0x9078: -1018,  // 選
		0x3042: 1655,   // あ
		0x6240: -814,   // 所
		0x3044: 331,    // い
		0x3046: -503,   // う
		0x683c: 1356,   // 格
		0x3048: 1199,   // え
		0x304a: 527,    // お
		0x304b: 647,    // か
		0x304c: -421,   // が
		0x304d: 1624,   // き
		0x304e: 1971,   // ぎ
		0x304f: 312,    // く
		0x54e1: 2104,   // 員
		0x3052: -983,   // げ
		0x5b9a: 1785,   // 定
		0x4e2d: -871,   // 中
		0x3055: -1537,  // さ
		0x3057: -1371,  // し
		0x8a9e: -1073,  // 語
		0x3059: -852,   // す
		0x6319: 1618,   // 挙
		0x601d: 872,    // 思
		0x8868: 663,    // 表
		0x6c0f: -1347,  // 氏
		0x3060: -1186,  // だ
		0x3061: 1093,   // ち
		0x7684: -3149,  // 的
		0x3063: 52,     // っ
		0x3064: 921,    // つ
		0x3066: -18,    // て
		0xff11: -514,   // １
		0x3067: -850,   // で
		0x3068: -127,   // と
		0x3069: 1682,   // ど
		0x306a: -787,   // な
		0x8b70: 1219,   // 議
		0x306b: -1224,  // に
		0x306e: -635,   // の
		0x306f: -578,   // は
		0x7814: -997,   // 研
		0x3079: 1001,   // べ
		0x544a: 848,    // 告
	},
	// unigram character cost for n+2
	uw6: {
		0x0031: -270,  // 1
		0xe004: 306,   // E1
		0x3042: -307,  // あ
		0x7a7a: -822,  // 空
		0x59d4: 798,   // 委
		0x3046: 189,   // う
		0x696d: -697,  // 業
		0x304b: 241,   // か
		0x304c: -73,   // が
		0x4f1a: 624,   // 会
		0x304f: -121,  // く
		0x4e00: -277,  // 一
		0x90ce: 1082,  // 郎
		0x3053: -200,  // こ
		0x3058: 1782,  // じ
		0x533a: 1792,  // 区
		0x3059: 383,   // す
		0x5b66: -960,  // 学
		0x5e02: 887,   // 市
		0xff11: -270,  // １
		0x305f: -428,  // た
		0x3001: 227,   // 、
		0x3002: 808,   // 。
		0x3063: 573,   // っ
		0x9023: 463,   // 連
		0x3066: -1014, // て
		0x3067: 101,   // で
		0x3068: -105,  // と
		0x002c: 227,   // ,
		0x306a: -253,  // な
		0x306b: -149,  // に
		0x5f8c: 535,   // 後
		0x002e: 808,   // .
		0x306e: -417,  // の
		0x306f: -236,  // は
		0x798f: 974,   // 福
		0x76f8: 753,   // 相
		0x4e2d: 201,   // 中
		0x5e83: -695,  // 広
		0x3082: -206,  // も
		0x793e: -507,  // 社
		0x54e1: -1212, // 員
		0xff99: -673,  // ﾙ
		0x524d: 302,   // 前
		0x4ef6: -800,  // 件
		0x308a: 187,   // り
		0x308b: -135,  // る
		0xff9d: -496,  // ﾝ
		0x30eb: -673,  // ル
		0x3092: 195,   // を
		0x30f3: -496,  // ン
		0x8005: 1811,  // 者
	},
	// bigram character cost for (n-2, n-1)
	bw1: {
		0x5f15<<16 | 0x304d: -1336, // 引き
		0x304b<<16 | 0x3089: 3472,  // から
		0x3044<<16 | 0x3046: 1743,  // いう
		0x3092<<16 | 0x898b: 731,   // を見
		0x5e73<<16 | 0x65b9: -2314, // 平方
		0xe000<<16 | 0x540c: 542,   // B1同
		0x3066<<16 | 0x3044: 805,   // てい
		0x305f<<16 | 0x3061: 1122,  // たち
		0x5927<<16 | 0x962a: 1497,  // 大阪
		0x307e<<16 | 0x305b: 2448,  // ませ
		0x53d6<<16 | 0x308a: -2784, // 取り
		0x306b<<16 | 0x306f: 1498,  // には
		0x3066<<16 | 0x304d: 1249,  // てき
		0x3059<<16 | 0x3067: -3399, // すで
		0x6bce<<16 | 0x65e5: -2113, // 毎日
		0x3069<<16 | 0x3053: 3887,  // どこ
		0x306a<<16 | 0x3093: -1113, // なん
		0x3055<<16 | 0x3089: -4143, // さら
		0x3053<<16 | 0x3068: 2083,  // こと
		0x307e<<16 | 0x3067: 1711,  // まで
		0x306e<<16 | 0x4e2d: 741,   // の中
		0x305d<<16 | 0x3053: 1977,  // そこ
		0x3044<<16 | 0x3063: -2055, // いっ
		0x304c<<16 | 0x3089: 600,   // がら
		0x3068<<16 | 0x307f: 1922,  // とみ
		0x3055<<16 | 0x3093: 4573,  // さん
		0x306b<<16 | 0x3082: 1671,  // にも
		0x3063<<16 | 0x305f: 3463,  // った
		0x306a<<16 | 0x3044: 5713,  // ない
		0x300d<<16 | 0x3068: 1682,  // 」と
		0x3064<<16 | 0x3044: -802,  // つい
		0x305f<<16 | 0x3081: 601,   // ため
		0x3057<<16 | 0x305f: 2641,  // した
		0x3046<<16 | 0x3093: 665,   // うん
		0x672c<<16 | 0x5f53: -2423, // 本当
		0x3067<<16 | 0x304d: 1127,  // でき
		0x3001<<16 | 0x3068: 660,   // 、と
		0x3084<<16 | 0x3080: -1947, // やむ
		0x3088<<16 | 0x3063: -2565, // よっ
		0x307e<<16 | 0x307e: 2600,  // まま
		0x3057<<16 | 0x3066: 1104,  // して
		0x3001<<16 | 0x540c: 727,   // 、同
		0x306b<<16 | 0x5bfe: -912,  // に対
		0x4ea1<<16 | 0x304f: -1886, // 亡く
		0xff63<<16 | 0x3068: 1682,  // ｣と
		0x3067<<16 | 0x3059: 3445,  // です
		0x5927<<16 | 0x304d: -2604, // 大き
		0xe000<<16 | 0x3042: 1404,  // B1あ
		0x3092<<16 | 0x3057: 1860,  // をし
		0x3042<<16 | 0x3063: 1505,  // あっ
		0x307e<<16 | 0x308b: -2155, // まる
		0x4eac<<16 | 0x90fd: 2558,  // 京都
		0x3053<<16 | 0x3093: -1262, // こん
		0x306a<<16 | 0x3063: 3015,  // なっ
		0x3068<<16 | 0x3044: -4915, // とい
		0x3044<<16 | 0x308b: 672,   // いる
		0x002c<<16 | 0x3068: 660,   // ,と
		0x308c<<16 | 0x305f: 2369,  // れた
		0x306a<<16 | 0x3069: 7379,  // など
		0x002c<<16 | 0x540c: 727,   // ,同
		0x306e<<16 | 0x4e00: -501,  // の一
		0x76ee<<16 | 0x6307: -724,  // 目指
		0x3046<<16 | 0x3057: -4817, // うし
		0x308c<<16 | 0x3067: -913,  // れで
		0x3067<<16 | 0x306f: 844,   // では
		0x305d<<16 | 0x308c: -871,  // それ
		0x3053<<16 | 0x3046: -790,  // こう
		0x306b<<16 | 0x3057: 2468,  // にし
		0x65e5<<16 | 0x672c: -195,  // 日本
	},
	// bigram character cost for (n-1, n)
	bw2: {
		0x2015<<16 | 0x2015: -5730,  // ――
		0x308c<<16 | 0x3070: 4114,   // れば
		0x3068<<16 | 0x3053: -1746,  // とこ
		0x306b<<16 | 0x5bfe: -14943, // に対
		0x0031<<16 | 0x0031: -669,   // 11
		0x3093<<16 | 0x3060: 728,    // んだ
		0x306f<<16 | 0x3044: 1073,   // はい
		0x304f<<16 | 0x306a: -1597,  // くな
		0x4e00<<16 | 0x90e8: -1051,  // 一部
		0x59d4<<16 | 0x54e1: -1250,  // 委員
		0x306e<<16 | 0x3067: -7059,  // ので
		0x3067<<16 | 0x3082: -4203,  // でも
		0x3044<<16 | 0x3046: -1609,  // いう
		0x306e<<16 | 0x306b: -6041,  // のに
		0x306f<<16 | 0x304c: -1033,  // はが
		0x3093<<16 | 0x306a: -4115,  // んな
		0x65b0<<16 | 0x805e: -4066,  // 新聞
		0x3068<<16 | 0x3068: -2279,  // とと
		0x306e<<16 | 0x306e: -6125,  // のの
		0x4f1a<<16 | 0x793e: -1116,  // 会社
		0x540c<<16 | 0x515a: 970,    // 同党
		0x3068<<16 | 0x306e: 720,    // との
		0x3082<<16 | 0x3044: 2230,   // もい
		0x3081<<16 | 0x3066: -3153,  // めて
		0x3057<<16 | 0x3044: -1819,  // しい
		0x306f<<16 | 0x305a: -2532,  // はず
		0x4e00<<16 | 0x65b9: -1375,  // 一方
		0x3092<<16 | 0x901a: -11877, // を通
		0x5c11<<16 | 0x306a: -1050,  // 少な
		0x3057<<16 | 0x304b: -545,   // しか
		0x4e0a<<16 | 0x304c: -4479,  // 上が
		0x3055<<16 | 0x308c: 13168,  // され
		0x3068<<16 | 0x307f: 5168,   // とみ
		0x2212<<16 | 0x2212: -13175, // −−
		0x3068<<16 | 0x3082: -3941,  // とも
		0x306a<<16 | 0x3044: -2488,  // ない
		0x672c<<16 | 0x4eba: -2697,  // 本人
		0x3063<<16 | 0x305f: 4589,   // った
		0x3055<<16 | 0x3093: -3977,  // さん
		0x306b<<16 | 0x95a2: -11388, // に関
		0x306a<<16 | 0x304c: -1313,  // なが
		0x3063<<16 | 0x3066: 1647,   // って
		0x3063<<16 | 0x3068: -2094,  // っと
		0x624b<<16 | 0x6a29: -1982,  // 手権
		0x3057<<16 | 0x305f: 5078,   // した
		0x304b<<16 | 0x3057: -1350,  // かし
		0x3089<<16 | 0x304b: -944,   // らか
		0x66dc<<16 | 0x65e5: -601,   // 曜日
		0x5e74<<16 | 0x5ea6: -8669,  // 年度
		0x3057<<16 | 0x3066: 972,    // して
		0x305d<<16 | 0x306e: -3744,  // その
		0x3057<<16 | 0x306a: 939,    // しな
		0x3082<<16 | 0x306e: -10713, // もの
		0x4e00<<16 | 0x4eba: 602,    // 一人
		0x6771<<16 | 0x4eac: -1543,  // 東京
		0x304c<<16 | 0x3044: 853,    // がい
		0x3089<<16 | 0x3057: -1611,  // らし
		0x7c73<<16 | 0x56fd: -4268,  // 米国
		0x4e00<<16 | 0x65e5: 970,    // 一日
		0x306a<<16 | 0x3069: -6509,  // など
		0x306b<<16 | 0x304a: -1615,  // にお
		0x3046<<16 | 0x304b: 2490,   // うか
		0x65e5<<16 | 0x7c73: 3372,   // 日米
		0x305f<<16 | 0x3044: -1253,  // たい
		0x306a<<16 | 0x306e: 2614,   // なの
		0x3089<<16 | 0x306b: -1897,  // らに
		0x5927<<16 | 0x962a: -2471,  // 大阪
		0x306b<<16 | 0x3057: 2748,   // にし
		0x5e9c<<16 | 0x770c: -2363,  // 府県
		0x304b<<16 | 0x3082: -602,   // かも
		0x308a<<16 | 0x3057: 651,    // りし
		0x793e<<16 | 0x4f1a: -1276,  // 社会
		0x304b<<16 | 0x3089: -7194,  // から
		0x307e<<16 | 0x3057: -1316,  // まし
		0x304b<<16 | 0x308c: 4612,   // かれ
		0x3070<<16 | 0x308c: 1813,   // ばれ
		0x3066<<16 | 0x3044: 6144,   // てい
		0x305f<<16 | 0x305f: -662,   // たた
		0x306b<<16 | 0x306a: 2454,   // にな
		0x305f<<16 | 0x3060: -3857,  // ただ
		0x305f<<16 | 0x3061: -786,   // たち
		0x7b2c<<16 | 0x306b: -1612,  // 第に
		0x308f<<16 | 0x308c: 7901,   // われ
		0x3066<<16 | 0x304d: 3640,   // てき
		0x305f<<16 | 0x3068: 1224,   // たと
		0x3066<<16 | 0x304f: 2551,   // てく
		0x306a<<16 | 0x3093: 3099,   // なん
		0x540c<<16 | 0x65e5: -913,   // 同日
		0x002e<<16 | 0x002e: -11822, // ..
		0x307e<<16 | 0x3067: -6621,  // まで
		0x304d<<16 | 0x305f: 1941,   // きた
		0x305f<<16 | 0x306f: -939,   // たは
		0x3053<<16 | 0x3068: -8392,  // こと
		0x7136<<16 | 0x3068: -1384,  // 然と
		0x3053<<16 | 0x306e: -4193,  // この
		0x304c<<16 | 0x3089: -3198,  // がら
		0x308a<<16 | 0x307e: 1620,   // りま
		0x3067<<16 | 0x3044: 2666,   // でい
		0x306b<<16 | 0x3088: -7236,  // によ
		0xff11<<16 | 0xff11: -669,   // １１
		0x3067<<16 | 0x304d: -1528,  // でき
		0x306b<<16 | 0x5f93: -4688,  // に従
		0x3066<<16 | 0x306f: -3110,  // ては
		0x7acb<<16 | 0x3066: -990,   // 立て
		0x3067<<16 | 0x3057: -3828,  // でし
		0x3067<<16 | 0x3059: -4761,  // です
		0x307e<<16 | 0x308c: 5409,   // まれ
		0x308c<<16 | 0x305f: 4270,   // れた
		0x3066<<16 | 0x3082: -3065,  // ても
		0x3068<<16 | 0x3044: 1890,   // とい
		0x5206<<16 | 0x306e: -7758,  // 分の
		0x306e<<16 | 0x304b: 2093,   // のか
		0x308d<<16 | 0x3046: 6067,   // ろう
		0x51fa<<16 | 0x3066: 2163,   // 出て
		0x65e5<<16 | 0x672c: -7068,  // 日本
		0x308c<<16 | 0x3066: 849,    // れて
		0x5e74<<16 | 0x9593: -1626,  // 年間
		0x65e5<<16 | 0x65b0: -722,   // 日新
		0x671d<<16 | 0x9bae: -2355,  // 朝鮮
		0x3055<<16 | 0x305b: 4533,   // させ
	},
	// bigram character cost for (n, n+1)
	bw3: {
		0x3067<<16 | 0x306b: -1482, // でに
		0xff82<<16 | 0x5e02: 965,   // ﾂ市
		0x308b<<16 | 0x308b: 3818,  // るる
		0x3067<<16 | 0x306f: 2295,  // では
		0x308c<<16 | 0x3070: -3246, // れば
		0x65e5<<16 | 0x3001: 974,   // 日、
		0x305f<<16 | 0x002e: 8875,  // た.
		0x3068<<16 | 0x3057: 2266,  // とし
		0x304c<<16 | 0x3001: 1816,  // が、
		0x3059<<16 | 0x002e: -1310, // す.
		0x3093<<16 | 0x3060: 606,   // んだ
		0x306b<<16 | 0x3001: -1021, // に、
		0x3044<<16 | 0x3044: 5308,  // いい
		0x3093<<16 | 0x3067: 798,   // んで
		0x3069<<16 | 0x3046: 4664,  // どう
		0x3044<<16 | 0x3048: 2079,  // いえ
		0x65b0<<16 | 0x805e: -5055, // 新聞
		0x305f<<16 | 0x3002: 8875,  // た。
		0x3042<<16 | 0x308a: 719,   // あり
		0x3042<<16 | 0x308b: 3846,  // ある
		0x3044<<16 | 0x304f: 3029,  // いく
		0x308c<<16 | 0x308b: 1091,  // れる
		0x3068<<16 | 0x306e: 541,   // との
		0x3059<<16 | 0x3002: -1310, // す。
		0x305d<<16 | 0x3046: 428,   // そう
		0x3057<<16 | 0x3044: -3714, // しい
		0x3060<<16 | 0x002e: 4098,  // だ.
		0x305a<<16 | 0x002c: 3426,  // ず,
		0x30ab<<16 | 0x6708: 990,   // カ月
		0x3044<<16 | 0x305f: 2056,  // いた
		0x3044<<16 | 0x3063: 1883,  // いっ
		0x5927<<16 | 0x4f1a: 2217,  // 大会
		0x3068<<16 | 0x3082: -3543, // とも
		0x3055<<16 | 0x3092: 976,   // さを
		0x306a<<16 | 0x3044: 1796,  // ない
		0x3063<<16 | 0x305f: -4748, // った
		0x3060<<16 | 0x3002: 4098,  // だ。
		0x304b<<16 | 0x3051: -743,  // かけ
		0x3063<<16 | 0x3066: 300,   // って
		0x305a<<16 | 0x3001: 3426,  // ず、
		0x3057<<16 | 0x305f: 3562,  // した
		0x306a<<16 | 0x304f: -903,  // なく
		0x308c<<16 | 0x002c: 854,   // れ,
		0x3057<<16 | 0x3066: 1449,  // して
		0x3057<<16 | 0x306a: 2608,  // しな
		0x304b<<16 | 0x3063: -4098, // かっ
		0x3089<<16 | 0x3057: 1479,  // らし
		0x3051<<16 | 0x3069: 1374,  // けど
		0xff76<<16 | 0x6708: 990,   // ｶ月
		0x308c<<16 | 0x3001: 854,   // れ、
		0x304b<<16 | 0x306b: -669,  // かに
		0x304c<<16 | 0x304d: -4855, // がき
		0x306e<<16 | 0x002c: -724,  // の,
		0x306a<<16 | 0x3069: 2135,  // など
		0x304c<<16 | 0x3051: -1127, // がけ
		0x3044<<16 | 0x308b: 5600,  // いる
		0x305f<<16 | 0x3044: -594,  // たい
		0x3057<<16 | 0x307e: 1200,  // しま
		0x3044<<16 | 0x308f: 1527,  // いわ
		0x4f1a<<16 | 0x8b70: 860,   // 会議
		0x306b<<16 | 0x3057: 1771,  // にし
		0x304c<<16 | 0x3063: -913,  // がっ
		0x306e<<16 | 0x3001: -724,  // の、
		0x3046<<16 | 0x3061: 1117,  // うち
		0x793e<<16 | 0x4f1a: 2024,  // 社会
		0x304b<<16 | 0x3089: 6520,  // から
		0x304b<<16 | 0x308a: -2670, // かり
		0x3046<<16 | 0x3068: 4798,  // うと
		0x306e<<16 | 0x5b50: -1000, // の子
		0x307e<<16 | 0x3057: 1113,  // まし
		0x3066<<16 | 0x3044: 6240,  // てい
		0x306f<<16 | 0x002c: 1337,  // は,
		0x307e<<16 | 0x3059: 6943,  // ます
		0x306b<<16 | 0x306a: 1906,  // にな
		0x3044<<16 | 0x002e: -1185, // い.
		0x3066<<16 | 0x304a: 855,   // てお
		0x308f<<16 | 0x308c: -605,  // われ
		0x306b<<16 | 0x306f: 2644,  // には
		0x307e<<16 | 0x3063: -1549, // まっ
		0x3089<<16 | 0x308c: 6820,  // られ
		0x307e<<16 | 0x3067: 6154,  // まで
		0x305f<<16 | 0x306e: 812,   // たの
		0x304d<<16 | 0x305f: 1645,  // きた
		0x3057<<16 | 0x002c: 1557,  // し,
		0x3053<<16 | 0x3068: 7397,  // こと
		0x306f<<16 | 0x3001: 1337,  // は、
		0x3079<<16 | 0x304d: 2181,  // べき
		0x3053<<16 | 0x306e: 1542,  // この
		0x3044<<16 | 0x3002: -1185, // い。
		0x304c<<16 | 0x3089: -4977, // がら
		0x304c<<16 | 0x308a: -2064, // がり
		0x304b<<16 | 0x002e: 2857,  // か.
		0x3060<<16 | 0x3063: 1004,  // だっ
		0x3057<<16 | 0x3001: 1557,  // し、
		0x305f<<16 | 0x308a: -1183, // たり
		0x305f<<16 | 0x308b: -853,  // たる
		0x3055<<16 | 0x3044: -714,  // さい
		0x59cb<<16 | 0x3081: 1681,  // 始め
		0x305a<<16 | 0x306b: 841,   // ずに
		0x3059<<16 | 0x308b: 6521,  // する
		0x3067<<16 | 0x3059: 1437,  // です
		0x304b<<16 | 0x3002: 2857,  // か。
		0x307e<<16 | 0x308c: -793,  // まれ
		0x65e5<<16 | 0x002c: 974,   // 日,
		0x3053<<16 | 0x308d: -2757, // ころ
		0x3042<<16 | 0x305f: -2194, // あた
		0x308c<<16 | 0x305f: 1850,  // れた
		0x3048<<16 | 0x3068: 1454,  // えと
		0x304c<<16 | 0x002c: 1816,  // が,
		0x3066<<16 | 0x3082: 302,   // ても
		0x3068<<16 | 0x3046: -1387, // とう
		0x308c<<16 | 0x3066: 1375,  // れて
		0x5165<<16 | 0x308a: 1232,  // 入り
		0x306b<<16 | 0x002c: -1021, // に,
	},
	// trigram character cost for (n-3, n-2, n-1)
	tw1: {
		0x6771<<32 | 0x4eac<<16 | 0x90fd: 2026,  // 東京都
		0x306b<<32 | 0x3064<<16 | 0x3044: -4681, // につい
	},
	// trigram character cost for (n-2, n-1, n)
	tw2: {
		0x3060<<32 | 0x3063<<16 | 0x3066: -1049, // だって
		0x3057<<32 | 0x3087<<16 | 0x3046: 3873,  // しょう
		0x3068<<32 | 0x3057<<16 | 0x3066: -4657, // として
		0x3042<<32 | 0x308b<<16 | 0x7a0b: -2049, // ある程
		0x5927<<32 | 0x304d<<16 | 0x306a: -1255, // 大きな
		0x305d<<32 | 0x306e<<16 | 0x5f8c: -4430, // その後
		0x3068<<32 | 0x3082<<16 | 0x306b: -4517, // ともに
		0x3053<<32 | 0x308d<<16 | 0x304c: -2434, // ころが
		0x5bfe<<32 | 0x3057<<16 | 0x3066: -2721, // 対して
		0x3082<<32 | 0x306e<<16 | 0x3067: 1882,  // もので
		0x793e<<32 | 0x4f1a<<16 | 0x515a: -3216, // 社会党
		0x3066<<32 | 0x3044<<16 | 0x305f: 1833,  // ていた
		0x4e00<<32 | 0x6c17<<16 | 0x306b: -792,  // 一気に
		0x3044<<32 | 0x3063<<16 | 0x305f: -1256, // いった
		0x521d<<32 | 0x3081<<16 | 0x3066: -1512, // 初めて
		0x540c<<32 | 0x6642<<16 | 0x306b: -8097, // 同時に
	},
	// trigram character cost for (n-1, n, n+1)
	tw3: {
		0x306e<<32 | 0x3067<<16 | 0x3001: -727,  // ので、
		0x3068<<32 | 0x3057<<16 | 0x3066: -4314, // として
		0x306e<<32 | 0x3082<<16 | 0x306e: -600,  // のもの
		0x306b<<32 | 0x3068<<16 | 0x3063: -5989, // にとっ
		0x3044<<32 | 0x305f<<16 | 0x3060: -1734, // いただ
		0x306b<<32 | 0x3064<<16 | 0x3044: -5483, // につい
		0x3057<<32 | 0x3066<<16 | 0x3044: 1314,  // してい
		0x306e<<32 | 0x3067<<16 | 0x002c: -727,  // ので,
		0x5341<<32 | 0x4e8c<<16 | 0x6708: -2287, // 十二月
		0x308c<<32 | 0x304b<<16 | 0x3089: -3752, // れから
		0x306b<<32 | 0x5f53<<16 | 0x305f: -6247, // に当た
	},
	// trigram character cost for (n, n+1, n+2)
	tw4: {
		0x304b<<32 | 0x3089<<16 | 0x306a: -2348, // からな
		0x307e<<32 | 0x3057<<16 | 0x305f: 5543,  // ました
		0x3068<<32 | 0x3044<<16 | 0x3046: 1349,  // という
		0x3044<<32 | 0x3046<<16 | 0x002e: 8576,  // いう.
		0x3088<<32 | 0x3046<<16 | 0x3068: -4258, // ようと
		0x3088<<32 | 0x308b<<16 | 0x3068: 5865,  // よると
		0x305f<<32 | 0x304c<<16 | 0x002c: 1516,  // たが,
		0x3066<<32 | 0x3044<<16 | 0x308b: 1538,  // ている
		0x3057<<32 | 0x3066<<16 | 0x3044: 2958,  // してい
		0x3044<<32 | 0x3046<<16 | 0x3002: 8576,  // いう。
		0x307e<<32 | 0x305b<<16 | 0x3093: 1097,  // ません
		0x305f<<32 | 0x304c<<16 | 0x3001: 1516,  // たが、
	},
	// unigram category cost for n-3
	uc1: {
		cM: 645,
		cO: -505,
		cK: 93,
		cA: 484,
	},
	// unigram category cost for n-2
	uc2: {
		cM: 3987,
		cN: 5775,
		cO: 646,
		cH: 1059,
		cI: 409,
		cA: 819,
	},
	// unigram category cost for n-1
	uc3: {
		cA: -1370,
		cI: 2311,
	},
	// unigram category cost for n
	uc4: {
		cM: 3565,
		cN: 3876,
		cO: 6646,
		cH: 1809,
		cI: -1032,
		cK: -3450,
		cA: -2643,
	},
	// unigram category cost for n+1
	uc5: {
		cM: 539,
		cO: -831,
		cH: 313,
		cI: -1238,
		cK: -799,
	},
	// unigram category cost for n+2
	uc6: {
		cM: 247,
		cO: -387,
		cH: -506,
		cI: -253,
		cK: 87,
	},
	// bigram category cost for (n-2, n-1)
	bc1: {
		cO<<3 | cH: -1378,
		cI<<3 | cI: 2461,
		cH<<3 | cH: 6,
		cK<<3 | cH: 406,
	},
	// bigram category cost for (n-1, n)
	bc2: {
		cA<<3 | cN: -878,
		cM<<3 | cK: 3334,
		cH<<3 | cH: -4070,
		cI<<3 | cA: 1327,
		cK<<3 | cI: 3831,
		cK<<3 | cK: -8741,
		cH<<3 | cM: -1711,
		cA<<3 | cA: -3267,
		cH<<3 | cN: 4012,
		cH<<3 | cO: 3761,
		cI<<3 | cH: -1184,
		cI<<3 | cI: -1332,
		cI<<3 | cK: 1721,
		cA<<3 | cI: 2744,
		cI<<3 | cO: 5492,
		cM<<3 | cH: -3132,
		cO<<3 | cO: -2920,
	},
	// bigram category cost for (n, n+1)
	bc3: {
		cM<<3 | cK: 1079,
		cM<<3 | cM: 4034,
		cH<<3 | cH: 996,
		cH<<3 | cI: 626,
		cH<<3 | cK: -721,
		cO<<3 | cA: -1652,
		cK<<3 | cK: 2762,
		cH<<3 | cN: -1307,
		cH<<3 | cO: -836,
		cI<<3 | cH: -301,
		cO<<3 | cH: 266,
	},
	// trigram category cost for (n-3, n-2, n-1)
	tc1: {
		cH<<6 | cO<<3 | cM: -331,
		cM<<6 | cM<<3 | cH: 187,
		cA<<6 | cA<<3 | cA: 1093,
		cI<<6 | cH<<3 | cI: 1169,
		cO<<6 | cO<<3 | cI: -1832,
		cH<<6 | cH<<3 | cH: 1029,
		cI<<6 | cO<<3 | cH: -142,
		cH<<6 | cH<<3 | cM: 580,
		cI<<6 | cO<<3 | cI: -1015,
		cH<<6 | cI<<3 | cI: 998,
		cH<<6 | cO<<3 | cH: -390,
		cI<<6 | cO<<3 | cM: 467,
	},
	// trigram category cost for (n-2, n-1, n)
	tc2: {
		cI<<6 | cH<<3 | cI: -1965,
		cO<<6 | cI<<3 | cI: -2649,
		cH<<6 | cM<<3 | cM: -1154,
		cK<<6 | cK<<3 | cH: 703,
		cH<<6 | cH<<3 | cO: 2088,
		cH<<6 | cI<<3 | cI: -1023,
	},
	// trigram category cost for (n-1, n, n+1)
	tc3: {
		cH<<6 | cH<<3 | cH: 346,
		cH<<6 | cH<<3 | cI: -341,
		cK<<6 | cO<<3 | cK: -1009,
		cI<<6 | cO<<3 | cI: -542,
		cI<<6 | cI<<3 | cH: -825,
		cA<<6 | cA<<3 | cA: -294,
		cK<<6 | cK<<3 | cA: 491,
		cI<<6 | cI<<3 | cM: -1035,
		cM<<6 | cH<<3 | cH: -2694,
		cO<<6 | cH<<3 | cO: -3393,
		cK<<6 | cK<<3 | cH: -1217,
		cK<<6 | cH<<3 | cH: -1216,
		cM<<6 | cH<<3 | cM: -457,
		cM<<6 | cH<<3 | cO: 123,
		cI<<6 | cH<<3 | cH: 128,
		cI<<6 | cH<<3 | cI: -3041,
		cM<<6 | cM<<3 | cH: -471,
		cI<<6 | cH<<3 | cO: -1935,
		cH<<6 | cO<<3 | cH: -1486,
		cN<<6 | cN<<3 | cH: -1689,
		cH<<6 | cI<<3 | cI: -1088,
		cH<<6 | cI<<3 | cK: 731,
		cN<<6 | cN<<3 | cO: 662,
	},
	// trigram category cost for (n, n+1, n+2)
	tc4: {
		cM<<6 | cO<<3 | cM: 841,
		cH<<6 | cH<<3 | cH: -203,
		cH<<6 | cH<<3 | cI: 1344,
		cH<<6 | cH<<3 | cK: 365,
		cH<<6 | cH<<3 | cM: -122,
		cI<<6 | cI<<3 | cH: 321,
		cH<<6 | cH<<3 | cN: 182,
		cI<<6 | cI<<3 | cI: 1497,
		cH<<6 | cH<<3 | cO: 669,
		cK<<6 | cK<<3 | cA: 3386,
		cI<<6 | cO<<3 | cO: 54,
		cM<<6 | cH<<3 | cH: -405,
		cI<<6 | cI<<3 | cO: 656,
		cM<<6 | cH<<3 | cI: 201,
		cK<<6 | cK<<3 | cK: 3065,
		cI<<6 | cH<<3 | cH: 695,
		cM<<6 | cM<<3 | cH: -241,
		cI<<6 | cH<<3 | cO: -2324,
		cH<<6 | cO<<3 | cH: 446,
		cM<<6 | cM<<3 | cM: 661,
		cH<<6 | cI<<3 | cH: 804,
		cH<<6 | cI<<3 | cI: 679,
		cK<<6 | cA<<3 | cK: 4845,
	},
	// unigram category (n-3) with context (n-3) cost
	uq1: {
		pB<<3 | cH: 21,
		pB<<3 | cI: -12,
		pB<<3 | cK: -99,
		pB<<3 | cN: 142,
		pB<<3 | cO: -56,
		pO<<3 | cH: -95,
		pO<<3 | cI: 477,
		pO<<3 | cK: 410,
		pO<<3 | cO: -2422,
	},
	// unigram category (n-2) with context (n-2) cost
	uq2: {
		pB<<3 | cH: 216,
		pB<<3 | cI: 113,
		pO<<3 | cK: 1759,
	},
	// unigram category (n-1) with context (n-1) cost
	uq3: {
		pB<<3 | cH: 42,
		pB<<3 | cI: 1913,
		pB<<3 | cK: -7198,
		pB<<3 | cM: 3160,
		pB<<3 | cN: 6427,
		pB<<3 | cO: 14761,
		pO<<3 | cI: -827,
		pB<<3 | cA: -479,
		pO<<3 | cN: -3212,
	},
	// bigram category (n-2, n-1) with context (n-2) cost
	bq1: {
		pB<<6 | cH<<3 | cM: 1521,
		pO<<6 | cH<<3 | cI: 451,
		pO<<6 | cK<<3 | cH: -1020,
		pO<<6 | cK<<3 | cK: 904,
		pB<<6 | cI<<3 | cI: -1158,
		pB<<6 | cO<<3 | cH: -91,
		pO<<6 | cI<<3 | cH: -296,
		pB<<6 | cI<<3 | cM: 886,
		pB<<6 | cO<<3 | cO: -2597,
		pB<<6 | cM<<3 | cH: 1208,
		pO<<6 | cK<<3 | cA: 1851,
		pO<<6 | cO<<3 | cO: 2965,
		pB<<6 | cH<<3 | cH: 1150,
		pB<<6 | cN<<3 | cH: 449,
	},
	// bigram category (n-1, n) with context (n-2) cost
	bq2: {
		pB<<6 | cK<<3 | cK: -1720,
		pO<<6 | cH<<3 | cH: -1139,
		pB<<6 | cH<<3 | cM: 466,
		pB<<6 | cK<<3 | cO: 864,
		pB<<6 | cI<<3 | cH: -919,
		pO<<6 | cH<<3 | cM: -181,
		pO<<6 | cI<<3 | cH: 153,
		pU<<6 | cH<<3 | cI: -1146,
		pB<<6 | cH<<3 | cH: 118,
		pB<<6 | cH<<3 | cI: -1159,
	},
	// bigram category (n-2, n-1) with context (n-1) cost
	bq3: {
		pO<<6 | cH<<3 | cH: 2174,
		pO<<6 | cK<<3 | cH: 1798,
		pO<<6 | cK<<3 | cI: -793,
		pB<<6 | cN<<3 | cN: 998,
		pB<<6 | cI<<3 | cI: -299,
		pO<<6 | cH<<3 | cM: 439,
		pB<<6 | cO<<3 | cH: 775,
		pO<<6 | cK<<3 | cO: -2242,
		pO<<6 | cI<<3 | cI: 280,
		pB<<6 | cM<<3 | cH: 937,
		pO<<6 | cM<<3 | cH: -2402,
		pO<<6 | cO<<3 | cO: 11699,
		pB<<6 | cM<<3 | cM: 8335,
		pB<<6 | cH<<3 | cH: -792,
		pB<<6 | cH<<3 | cI: 2664,
		pB<<6 | cK<<3 | cI: 419,
	},
	// bigram category (n-1, n) with context (n-1) cost
	bq4: {
		pB<<6 | cK<<3 | cK: -1806,
		pO<<6 | cH<<3 | cH: 266,
		pO<<6 | cH<<3 | cK: -2036,
		pB<<6 | cI<<3 | cH: 3761,
		pB<<6 | cI<<3 | cI: -4654,
		pB<<6 | cI<<3 | cK: 1348,
		pO<<6 | cN<<3 | cN: -973,
		pB<<6 | cO<<3 | cO: -12396,
		pO<<6 | cA<<3 | cH: 926,
		pB<<6 | cM<<3 | cI: -3385,
		pB<<6 | cH<<3 | cH: -3895,
	},
	// trigram category (n-3, n-2, n-1) with context (n-2) cost
	tq1: {
		pB<<9 | cH<<6 | cI<<3 | cH: -132,
		pO<<9 | cH<<6 | cH<<3 | cH: 281,
		pB<<9 | cO<<6 | cH<<3 | cH: 225,
		pO<<9 | cI<<6 | cI<<3 | cH: -68,
		pB<<9 | cN<<6 | cH<<3 | cH: -744,
		pO<<9 | cH<<6 | cI<<3 | cH: 249,
		pB<<9 | cI<<6 | cH<<3 | cH: 60,
		pB<<9 | cH<<6 | cH<<3 | cH: -227,
		pB<<9 | cH<<6 | cH<<3 | cI: 316,
		pO<<9 | cA<<6 | cK<<3 | cK: 482,
		pB<<9 | cI<<6 | cI<<3 | cI: 1595,
		pB<<9 | cO<<6 | cO<<3 | cO: -908,
		pO<<9 | cI<<6 | cH<<3 | cI: 200,
	},
	// trigram category (n-2, n-1, n) with context (n-2) cost
	tq2: {
		pB<<9 | cI<<6 | cH<<3 | cH: -1401,
		pB<<9 | cK<<6 | cA<<3 | cK: -543,
		pB<<9 | cO<<6 | cO<<3 | cO: -5591,
		pB<<9 | cI<<6 | cI<<3 | cI: -1033,
	},
	// trigram category (n-3, n-2, n-1) with context (n-1) cost
	tq3: {
		pB<<9 | cH<<6 | cI<<3 | cH: 222,
		pB<<9 | cH<<6 | cI<<3 | cI: -504,
		pO<<9 | cH<<6 | cI<<3 | cI: 997,
		pO<<9 | cK<<6 | cA<<3 | cK: 2792,
		pO<<9 | cO<<6 | cI<<3 | cI: -685,
		pB<<9 | cH<<6 | cH<<3 | cH: 478,
		pO<<9 | cH<<6 | cH<<3 | cH: 346,
		pO<<9 | cH<<6 | cH<<3 | cI: 1729,
		pB<<9 | cH<<6 | cH<<3 | cM: -1073,
		pB<<9 | cI<<6 | cI<<3 | cH: -116,
		pB<<9 | cI<<6 | cI<<3 | cI: -105,
		pO<<9 | cI<<6 | cI<<3 | cH: 1344,
		pO<<9 | cO<<6 | cH<<3 | cH: 110,
		pO<<9 | cK<<6 | cK<<3 | cA: 679,
		pB<<9 | cM<<6 | cH<<3 | cI: -863,
		pB<<9 | cM<<6 | cH<<3 | cM: -464,
		pO<<9 | cH<<6 | cM<<3 | cH: 481,
		pO<<9 | cK<<6 | cH<<3 | cH: 587,
		pB<<9 | cO<<6 | cM<<3 | cH: 620,
		pO<<9 | cI<<6 | cH<<3 | cH: 623,
	},
	// trigram category (n-2, n-1, n) with context (n-1) cost
	tq4: {
		pB<<9 | cH<<6 | cI<<3 | cI: -966,
		pO<<9 | cH<<6 | cH<<3 | cH: -294,
		pO<<9 | cH<<6 | cH<<3 | cI: 2446,
		pO<<9 | cK<<6 | cA<<3 | cK: -8156,
		pO<<9 | cI<<6 | cI<<3 | cH: 626,
		pO<<9 | cI<<6 | cI<<3 | cI: -4007,
		pO<<9 | cH<<6 | cH<<3 | cO: 480,
		pO<<9 | cH<<6 | cI<<3 | cH: -1573,
		pB<<9 | cH<<6 | cH<<3 | cH: -721,
		pO<<9 | cA<<6 | cK<<3 | cK: 180,
		pB<<9 | cI<<6 | cI<<3 | cH: -607,
		pB<<9 | cI<<6 | cI<<3 | cI: -2181,
		pO<<9 | cA<<6 | cA<<3 | cA: -2763,
		pO<<9 | cI<<6 | cH<<3 | cH: 1935,
		pB<<9 | cH<<6 | cH<<3 | cM: -3604,
		pO<<9 | cI<<6 | cH<<3 | cI: -493,
	},
}
