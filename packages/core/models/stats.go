package models

type Stats struct {
	TotalGameUsers       int64 `json:"total_game_users"`
	TotalSkillRecords    int64 `json:"total_skill_records"`
	RecordsLast7Days     int64 `json:"records_last_7_days"`
	RecordsPrevious7Days int64 `json:"records_previous_7_days"`
}
