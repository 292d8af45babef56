package roster

// TotalHours sums the daily window length of every non-absent assignment,
// in hours. minutesByProject maps project name to its window length in
// minutes; a project missing from the map (or with a broken window)
// contributes zero rather than failing.
func TotalHours(assignments []Assignment, minutesByProject map[string]int) float64 {
	totalMinutes := 0
	for _, a := range assignments {
		if a.Status == StatusAbsent {
			continue
		}
		totalMinutes += minutesByProject[a.ProjectName]
	}
	return float64(totalMinutes) / 60.0
}

// BuildDeltas joins assigned counts against required counts into the
// reconciliation grid. Either side may name (project, date) pairs the other
// does not; a missing side counts as zero.
func BuildDeltas(assigned map[string]map[string]int, required []RequiredPersonnel) []ReconciliationDelta {
	requiredByKey := make(map[string]map[string]int)
	for _, r := range required {
		if requiredByKey[r.ProjectName] == nil {
			requiredByKey[r.ProjectName] = make(map[string]int)
		}
		requiredByKey[r.ProjectName][r.Date] = r.Count
	}

	var deltas []ReconciliationDelta
	seen := make(map[string]map[string]bool)

	for projectName, byDate := range assigned {
		for date, count := range byDate {
			req := requiredByKey[projectName][date]
			deltas = append(deltas, ReconciliationDelta{
				ProjectName: projectName,
				Date:        date,
				Assigned:    count,
				Required:    req,
				Delta:       count - req,
			})
			if seen[projectName] == nil {
				seen[projectName] = make(map[string]bool)
			}
			seen[projectName][date] = true
		}
	}

	for _, r := range required {
		if seen[r.ProjectName][r.Date] {
			continue
		}
		deltas = append(deltas, ReconciliationDelta{
			ProjectName: r.ProjectName,
			Date:        r.Date,
			Assigned:    0,
			Required:    r.Count,
			Delta:       -r.Count,
		})
	}

	return deltas
}
