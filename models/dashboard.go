package models

type DashboardStats struct {
	SportsTotal        int `json:"sports_total"`
	ModalitiesTotal    int `json:"modalities_total"`
	TeamsTotal         int `json:"teams_total"`
	PlayersTotal       int `json:"players_total"`
	ChampionshipsTotal int `json:"championships_total"`
	MatchesTotal       int `json:"matches_total"`
	UnscoredMatches    int `json:"unscored_matches"`
	NewsTotal          int `json:"news_total"`
}
