package main

type houseSeed struct {
	Name        string
	Description string
	LogoURL     string
}

var houseSeeds = []houseSeed{
	{
		Name: "Al-Ghuraab",
		Description: "Al-Ghuraab (الغراب) — Inspired by the crow mentioned in the Qur'an. " +
			"Represents learning through observation, humility, and moral awareness.",
		LogoURL: "https://res.cloudinary.com/dntujhjkw/image/upload/v1770108364/Al-Ghuraab_szxjhl.png",
	},
	{
		Name: "An-Nahl",
		Description: "An-Nahl (النحل) — Inspired by the bee mentioned in the Qur'an. " +
			"Symbolizes productivity, order, obedience, and service to others.",
		LogoURL: "https://res.cloudinary.com/dntujhjkw/image/upload/v1770108374/An-Nahl_pelgou.png",
	},
	{
		Name: "An-Nun",
		Description: "An-Nun (النون) — Inspired by the great fish associated with Prophet Yunus. " +
			"Represents patience, repentance, resilience, and self-reflection.",
		LogoURL: "https://res.cloudinary.com/dntujhjkw/image/upload/v1770108369/An-Nun_erm5nb.png",
	},
	{
		Name: "Al-Adiyat",
		Description: "Al-Adiyat (العاديات) — Inspired by the charging horses mentioned in the Qur'an. " +
			"Symbolizes discipline, loyalty, determination, and relentless effort.",
		LogoURL: "https://res.cloudinary.com/dntujhjkw/image/upload/v1770108368/Al-Adiyat_l5h9eh.png",
	},
	{
		Name: "Al-Hudhud",
		Description: "Al-Hudhud (الهدهد) — Inspired by the hoopoe bird mentioned in the Qur'an. " +
			"Represents intelligence, communication, courage, and responsibility.",
		LogoURL: "https://res.cloudinary.com/dntujhjkw/image/upload/v1770108363/Al-HudHud_oblb0w.png",
	},
	{
		Name: "An-Naml",
		Description: "An-Naml (النمل) — Inspired by the ants mentioned in the Qur'an. " +
			"Symbolizes teamwork, awareness, humility, and care for the community.",
		LogoURL: "https://res.cloudinary.com/dntujhjkw/image/upload/v1770108363/An-Naml_hqfrmx.png",
	},
}

var captainSeeds = []struct {
	Name     string
	Username string
	House    string
}{
	{"Captain Ghuraab", "ghuraab", "Al-Ghuraab"},
	{"Captain Nahl", "nahl", "An-Nahl"},
	{"Captain Nun", "nun", "An-Nun"},
	{"Captain Adiyat", "adiyat", "Al-Adiyat"},
	{"Captain Hudhud", "hudhud", "Al-Hudhud"},
	{"Captain Naml", "naml", "An-Naml"},
}

var advisorSeeds = []struct {
	Name     string
	Role     string
	Username string
	House    string
}{
	{"Mr. Rahman", "House Advisor", "rahman", "Al-Ghuraab"},
	{"Ms. Aisyah", "House Advisor", "aisyah", "An-Nahl"},
	{"Mr. Yusuf", "House Advisor", "yusuf", "An-Nun"},
	{"Ms. Hana", "House Advisor", "hana", "Al-Adiyat"},
	{"Mr. Salman", "House Advisor", "salman", "Al-Hudhud"},
	{"Ms. Zahra", "House Advisor", "zahra", "An-Naml"},
}

var memberSeeds = []struct {
	Name  string
	Role  string
	House string
}{
	{"Ahmad", "Member", "Al-Ghuraab"},
	{"Fatimah", "Member", "Al-Ghuraab"},
	{"Ali", "Member", "An-Nahl"},
	{"Amina", "Member", "An-Nahl"},
	{"Umar", "Member", "An-Nun"},
	{"Khadijah", "Member", "An-Nun"},
	{"Hasan", "Member", "Al-Adiyat"},
	{"Husain", "Member", "Al-Adiyat"},
	{"Bilal", "Member", "Al-Hudhud"},
	{"Zainab", "Member", "Al-Hudhud"},
	{"Yasir", "Member", "An-Naml"},
	{"Maryam", "Member", "An-Naml"},
}

var achievementSeeds = []struct {
	Name        string
	Description string
}{
	{"Cleanest House", "Maintained the cleanest environment"},
	{"Best Teamwork", "Excellent collaboration among members"},
	{"Top Discipline", "Outstanding discipline and conduct"},
}

var announcementSeeds = []struct {
	Title   string
	Content string
}{
	{"Welcome Announcement", "Welcome to the new house season!"},
	{"Training Session", "House training will begin this Friday."},
	{"Team Reminder", "Remember to wear house shirts every Monday."},
}
