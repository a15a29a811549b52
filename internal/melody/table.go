package melody

// table is grouped by line in the order Lines returns them.
var table = [...]MelodyInfo{
	// JY: Yamanote Line
	{"JY-Tokyo", "JY", "Yamanote", "Tokyo", "東京", "SH-3", "sh3.mp3"},
	{"JY-Kanda", "JY", "Yamanote", "Kanda", "神田", "Seseragi", "seseragi.mp3"},
	{"JY-Akihabara", "JY", "Yamanote", "Akihabara", "秋葉原", "Ogawa V1", "ogawav1.mp3"},
	{"JY-Okachimachi", "JY", "Yamanote", "Okachimachi", "御徒町", "Haru Tremolo", "harutrem.mp3"},
	{"JY-Ueno", "JY", "Yamanote", "Ueno", "上野", "Bell B", "bellb.mp3"},
	{"JY-Uguisudani", "JY", "Yamanote", "Uguisudani", "鶯谷", "Haru Tremolo", "harutrem.mp3"},
	{"JY-Nippori", "JY", "Yamanote", "Nippori", "日暮里", "Haru Tremolo", "harutrem.mp3"},
	{"JY-NishiNippori", "JY", "Yamanote", "Nishi-Nippori", "西日暮里", "Haru Tremolo", "harutrem.mp3"},
	{"JY-Tabata", "JY", "Yamanote", "Tabata", "田端", "Haru Tremolo", "harutrem.mp3"},
	{"JY-Komagome", "JY", "Yamanote", "Komagome", "駒込", "Sakura B", "sakurab.mp3"},
	{"JY-Sugamo", "JY", "Yamanote", "Sugamo", "巣鴨", "Haru", "haru.mp3"},
	{"JY-Otsuka", "JY", "Yamanote", "Otsuka", "大塚", "Haru", "haru.mp3"},
	{"JY-Ikebukuro", "JY", "Yamanote", "Ikebukuro", "池袋", "Melody", "melody.mp3"},
	{"JY-Mejiro", "JY", "Yamanote", "Mejiro", "目白", "Haru", "haru.mp3"},
	{"JY-Takadanobaba", "JY", "Yamanote", "Takadanobaba", "高田馬場", "Astro Boy", "astrob.mp3"},
	{"JY-ShinOkubo", "JY", "Yamanote", "Shin-Okubo", "新大久保", "Bell B", "bellb.mp3"},
	{"JY-Shinjuku", "JY", "Yamanote", "Shinjuku", "新宿", "Aratana", "aratana.mp3"},
	{"JY-Yoyogi", "JY", "Yamanote", "Yoyogi", "代々木", "Haru", "haru.mp3"},
	{"JY-Harajuku", "JY", "Yamanote", "Harajuku", "原宿", "Harajuku A", "harajukua.mp3"},
	{"JY-Shibuya", "JY", "Yamanote", "Shibuya", "渋谷", "Hana no Horokobi", "hananohorokobi.mp3"},
	{"JY-Ebisu", "JY", "Yamanote", "Ebisu", "恵比寿", "Third Man", "thirdman.mp3"},
	{"JY-Meguro", "JY", "Yamanote", "Meguro", "目黒", "Water Crown", "watercrown.mp3"},
	{"JY-Gotanda", "JY", "Yamanote", "Gotanda", "五反田", "SH-23", "sh23.mp3"},
	{"JY-Osaki", "JY", "Yamanote", "Osaki", "大崎", "Umi no Eki", "uminoeki.mp3"},
	{"JY-Shinagawa", "JY", "Yamanote", "Shinagawa", "品川", "Seseragi", "seseragi.mp3"},
	{"JY-TakanawaGateway", "JY", "Yamanote", "Takanawa Gateway", "高輪ゲートウェイ", "Sweet Call", "sweetcall.mp3"},
	{"JY-Tamachi", "JY", "Yamanote", "Tamachi", "田町", "Seseragi", "seseragi.mp3"},
	{"JY-Hamamatsucho", "JY", "Yamanote", "Hamamatsucho", "浜松町", "Seseragi", "seseragi.mp3"},
	{"JY-Shimbashi", "JY", "Yamanote", "Shimbashi", "新橋", "Gota del Vient", "gotadelvient.mp3"},
	{"JY-Yurakucho", "JY", "Yamanote", "Yurakucho", "有楽町", "SH-21", "sh21.mp3"},
	// JK: Keihin-Tohoku Line
	{"JK-Shinagawa", "JK", "Keihin-Tohoku", "Shinagawa", "品川", "Chime", "chime.mp3"},
	{"JK-TakanawaGateway", "JK", "Keihin-Tohoku", "Takanawa Gateway", "高輪ゲートウェイ", "Flower Shop", "flowershop.mp3"},
	{"JK-Tamachi", "JK", "Keihin-Tohoku", "Tamachi", "田町", "Spring Box", "springbox.mp3"},
	{"JK-Hamamatsucho", "JK", "Keihin-Tohoku", "Hamamatsucho", "浜松町", "Spring Box", "springbox.mp3"},
	{"JK-Shimbashi", "JK", "Keihin-Tohoku", "Shimbashi", "新橋", "SH-1", "sh1.mp3"},
	{"JK-Yurakucho", "JK", "Keihin-Tohoku", "Yurakucho", "有楽町", "SH-5", "sh5.mp3"},
	{"JK-Tokyo", "JK", "Keihin-Tohoku", "Tokyo", "東京", "SH-5", "sh5.mp3"},
	{"JK-Kanda", "JK", "Keihin-Tohoku", "Kanda", "神田", "Haru New", "harunew.mp3"},
	{"JK-Akihabara", "JK", "Keihin-Tohoku", "Akihabara", "秋葉原", "Beyond the Line", "beyondtheline.mp3"},
	{"JK-Okachimachi", "JK", "Keihin-Tohoku", "Okachimachi", "御徒町", "Haru New", "harunew.mp3"},
	{"JK-Ueno", "JK", "Keihin-Tohoku", "Ueno", "上野", "Bell A", "bella.mp3"},
	{"JK-Uguisudani", "JK", "Keihin-Tohoku", "Uguisudani", "鶯谷", "Haru New", "harunew.mp3"},
	{"JK-Nippori", "JK", "Keihin-Tohoku", "Nippori", "日暮里", "Haru New", "harunew.mp3"},
	{"JK-NishiNippori", "JK", "Keihin-Tohoku", "Nishi-Nippori", "西日暮里", "Haru New", "harunew.mp3"},
	{"JK-Tabata", "JK", "Keihin-Tohoku", "Tabata", "田端", "Haru New", "harunew.mp3"},
	// JB: Sobu Line
	{"JB-Ichigaya", "JB", "Sobu", "Ichigaya", "市ケ谷", "Haru New", "harunew.mp3"},
	{"JB-Iidabashi", "JB", "Sobu", "Iidabashi", "飯田橋", "SF-3", "sf3.mp3"},
	{"JB-Suidobashi", "JB", "Sobu", "Suidobashi", "水道橋", "Fighting Spirit A", "fightingspirita.mp3"},
	{"JB-Ochanomizu", "JB", "Sobu", "Ochanomizu", "御茶ノ水", "SH-6", "sh6.mp3"},
	{"JB-Akihabara", "JB", "Sobu", "Akihabara", "秋葉原", "SF-3", "sf3.mp3"},
	// JA: Saikyo Line
	{"JA-Ikebukuro", "JA", "Saikyo", "Ikebukuro", "池袋", "Mellow Time", "mellowtime.mp3"},
	{"JA-Shinjuku", "JA", "Saikyo", "Shinjuku", "新宿", "Mellow Time", "mellowtime.mp3"},
	{"JA-Shibuya", "JA", "Saikyo", "Shibuya", "渋谷", "SH-1", "sh1.mp3"},
	{"JA-Ebisu", "JA", "Saikyo", "Ebisu", "恵比寿", "Third Man", "thirdman.mp3"},
	{"JA-Osaki", "JA", "Saikyo", "Osaki", "大崎", "Twinkling Skyline", "twinklingskyline.mp3"},
	// JU: Ueno-Tokyo Line
	{"JU-Shinagawa", "JU", "Ueno-Tokyo", "Shinagawa", "品川", "Railroad Song B", "railroadsongb.mp3"},
	{"JU-Shimbashi", "JU", "Ueno-Tokyo", "Shimbashi", "新橋", "Sunlight", "sunlight.mp3"},
	{"JU-Tokyo", "JU", "Ueno-Tokyo", "Tokyo", "東京", "Bell A", "bella.mp3"},
	{"JU-Ueno", "JU", "Ueno-Tokyo", "Ueno", "上野", "Beyond the Line", "beyondtheline.mp3"},
	// NEX: Narita Express
	{"NEX-Ikebukuro", "NEX", "Narita Express", "Ikebukuro", "池袋", "Haru", "haru.mp3"},
	{"NEX-Shinjuku", "NEX", "Narita Express", "Shinjuku", "新宿", "Beautiful Hill", "beautifulhill.mp3"},
	{"NEX-Shibuya", "NEX", "Narita Express", "Shibuya", "渋谷", "SH-1", "sh1.mp3"},
	{"NEX-Shinagawa", "NEX", "Narita Express", "Shinagawa", "品川", "Seseragi", "seseragi.mp3"},
}
