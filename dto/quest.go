package dto

import "main/model"

// DailyQuestsResponse is today's assignment with completion state. Labels are
// keyed by quest id like the completion map.
type DailyQuestsResponse struct {
	Quests      map[string]bool   `json:"quests"`
	QuestLabels map[string]string `json:"quest_labels"`
	QuestDate   string            `json:"quest_date"`
}

func ToDailyQuestsResponse(user *model.User) DailyQuestsResponse {
	return DailyQuestsResponse{
		Quests:      user.Quests,
		QuestLabels: user.QuestLabels,
		QuestDate:   user.QuestDate,
	}
}
