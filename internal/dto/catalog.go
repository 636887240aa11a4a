package dto

// TimetableEntryResponse ligne d'EDT telle qu'exposée par l'API
type TimetableEntryResponse struct {
	Teacher   string `json:"teacher"`
	Subject   string `json:"subject"`
	Promotion string `json:"promotion"`
	Day       string `json:"day"`
	Timeslot  string `json:"timeslot"`
	Location  string `json:"location"`
}

// MyTimetableResponse lignes brutes d'un enseignant (avant déduplication)
type MyTimetableResponse struct {
	Entries []TimetableEntryResponse `json:"entries"`
}

// StudentResponse étudiant d'un sous-groupe
type StudentResponse struct {
	StudentName string `json:"student_name"`
	Promotion   string `json:"promotion"`
	Group       string `json:"group"`
	Subgroup    string `json:"subgroup"`
}
