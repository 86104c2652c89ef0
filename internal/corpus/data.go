package corpus

// questions is the bundled corpus: Japanese crop names and their
// scientific names with authority abbreviations.
var questions = []Question{
	{ID: "1", Question: "イネ", Answer: "Oryza sativa L.", Hint: "Oryza sativa L."},
	{ID: "2", Question: "アメリカイネ", Answer: "Oryza glaberrima Steud.", Hint: "Oryza glaberrima Steud."},
	{ID: "3", Question: "コムギ", Answer: "Triticum aestivum L.", Hint: "Triticum aestivum L."},
	{ID: "4", Question: "デュラムコムギ", Answer: "Triticum durum Desf.", Hint: "Triticum durum Desf."},
	{ID: "5", Question: "オオムギ", Answer: "Hordeum vulgare L. emend Lam.", Hint: "Hordeum vulgare L. emend Lam."},
	{ID: "6", Question: "ライムギ", Answer: "Secale cereale L.", Hint: "Secale cereale L."},
	{ID: "7", Question: "エンバク", Answer: "Avena sativa L.", Hint: "Avena sativa L."},
	{ID: "8", Question: "トウモロコシ", Answer: "Zea mays L.", Hint: "Zea mays L."},
	{ID: "9", Question: "モロコシ（ソルガム）", Answer: "Sorghum bicolor Moench", Hint: "Sorghum bicolor Moench"},
	{ID: "10", Question: "アワ", Answer: "Setaria italica Beauv.", Hint: "Setaria italica Beauv."},
	{ID: "11", Question: "キビ", Answer: "Panicum miliaceum L.", Hint: "Panicum miliaceum L."},
	{ID: "12", Question: "ヒエ", Answer: "Echinochloa esculenta Scholz", Hint: "Echinochloa esculenta Scholz"},
	{ID: "13", Question: "ソバ", Answer: "Fagopyrum esculentum Moench", Hint: "Fagopyrum esculentum Moench"},
	{ID: "14", Question: "インゲンマメ", Answer: "Phaseolus vulgaris L.", Hint: "Pha vul"},
	{ID: "15", Question: "ダイズ（大豆）", Answer: "Glycine max Merr.", Hint: "Glycine max Merr."},
}
