package teams

// ESPN's logo CDN hosts stable team logos.
const logoBase = "https://a.espncdn.com/i/teamlogos/nba/500"

const leagueSize = 30

var registry = map[string]Team{
	"ATL": {Tricode: "ATL", Name: "Atlanta Hawks", LogoURL: logoBase + "/atl.png"},
	"BOS": {Tricode: "BOS", Name: "Boston Celtics", LogoURL: logoBase + "/bos.png"},
	"BKN": {Tricode: "BKN", Name: "Brooklyn Nets", LogoURL: logoBase + "/bkn.png"},
	"CHA": {Tricode: "CHA", Name: "Charlotte Hornets", LogoURL: logoBase + "/cha.png"},
	"CHI": {Tricode: "CHI", Name: "Chicago Bulls", LogoURL: logoBase + "/chi.png"},
	"CLE": {Tricode: "CLE", Name: "Cleveland Cavaliers", LogoURL: logoBase + "/cle.png"},
	"DAL": {Tricode: "DAL", Name: "Dallas Mavericks", LogoURL: logoBase + "/dal.png"},
	"DEN": {Tricode: "DEN", Name: "Denver Nuggets", LogoURL: logoBase + "/den.png"},
	"DET": {Tricode: "DET", Name: "Detroit Pistons", LogoURL: logoBase + "/det.png"},
	"GSW": {Tricode: "GSW", Name: "Golden State Warriors", LogoURL: logoBase + "/gs.png"},
	"HOU": {Tricode: "HOU", Name: "Houston Rockets", LogoURL: logoBase + "/hou.png"},
	"IND": {Tricode: "IND", Name: "Indiana Pacers", LogoURL: logoBase + "/ind.png"},
	"LAC": {Tricode: "LAC", Name: "LA Clippers", LogoURL: logoBase + "/lac.png"},
	"LAL": {Tricode: "LAL", Name: "Los Angeles Lakers", LogoURL: logoBase + "/lal.png"},
	"MEM": {Tricode: "MEM", Name: "Memphis Grizzlies", LogoURL: logoBase + "/mem.png"},
	"MIA": {Tricode: "MIA", Name: "Miami Heat", LogoURL: logoBase + "/mia.png"},
	"MIL": {Tricode: "MIL", Name: "Milwaukee Bucks", LogoURL: logoBase + "/mil.png"},
	"MIN": {Tricode: "MIN", Name: "Minnesota Timberwolves", LogoURL: logoBase + "/min.png"},
	"NOP": {Tricode: "NOP", Name: "New Orleans Pelicans", LogoURL: logoBase + "/no.png"},
	"NYK": {Tricode: "NYK", Name: "New York Knicks", LogoURL: logoBase + "/ny.png"},
	"OKC": {Tricode: "OKC", Name: "Oklahoma City Thunder", LogoURL: logoBase + "/okc.png"},
	"ORL": {Tricode: "ORL", Name: "Orlando Magic", LogoURL: logoBase + "/orl.png"},
	"PHI": {Tricode: "PHI", Name: "Philadelphia 76ers", LogoURL: logoBase + "/phi.png"},
	"PHX": {Tricode: "PHX", Name: "Phoenix Suns", LogoURL: logoBase + "/phx.png"},
	"POR": {Tricode: "POR", Name: "Portland Trail Blazers", LogoURL: logoBase + "/por.png"},
	"SAC": {Tricode: "SAC", Name: "Sacramento Kings", LogoURL: logoBase + "/sac.png"},
	"SAS": {Tricode: "SAS", Name: "San Antonio Spurs", LogoURL: logoBase + "/sa.png"},
	"TOR": {Tricode: "TOR", Name: "Toronto Raptors", LogoURL: logoBase + "/tor.png"},
	"UTA": {Tricode: "UTA", Name: "Utah Jazz", LogoURL: logoBase + "/utah.png"},
	"WAS": {Tricode: "WAS", Name: "Washington Wizards", LogoURL: logoBase + "/wsh.png"},
}
