package core

import "github.com/huangsam/moodtrack/schema"

// Overview aggregates the whole series. Ties on the extreme days resolve to the
// earliest entry in series order.
func (s *Series) Overview() (schema.Overview, bool) {
	if s.Empty() {
		return schema.Overview{}, false
	}
	var sums scoreSums
	maxStress, minEnergy := s.entries[0], s.entries[0]
	for _, e := range s.entries {
		sums.add(e)
		if e.Stress > maxStress.Stress {
			maxStress = e
		}
		if e.Energy < minEnergy.Energy {
			minEnergy = e
		}
	}
	mood, energy, stress := sums.means()
	return schema.Overview{
		AvgMood:          mood,
		AvgEnergy:        energy,
		AvgStress:        stress,
		HighestStressDay: maxStress.Day(),
		LowestEnergyDay:  minEnergy.Day(),
		FirstDay:         s.entries[0].Day(),
		LastDay:          s.entries[len(s.entries)-1].Day(),
		Count:            sums.n,
	}, true
}
