package models

// Progress is derived from a contract's milestones on every read; it is never stored.
type Progress struct {
	Milestones []Milestone `json:"milestones"`
	Completed  int         `json:"completed"`
	Total      int         `json:"total"`
	Percentage float64     `json:"percentage"`
}

// ComputeProgress returns completed/total*100, or 0 when there are no milestones.
func ComputeProgress(milestones []Milestone) Progress {
	p := Progress{Milestones: milestones, Total: len(milestones)}
	if p.Milestones == nil {
		p.Milestones = []Milestone{}
	}
	for _, m := range milestones {
		if m.Status == MilestoneStatusCompleted {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}
