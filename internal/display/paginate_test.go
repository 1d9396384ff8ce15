package display

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeItems(prefix string, n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{ID: fmt.Sprintf("%s_%d", prefix, i), Title: fmt.Sprintf("%s %d", prefix, i)})
	}
	return items
}

// flatten собирает элементы всех экранов в порядке показа.
func flatten(p Pagination) (today, tomorrow []Item) {
	for _, s := range p.Screens {
		today = append(today, s.TodayReminders...)
		tomorrow = append(tomorrow, s.TomorrowReminders...)
	}
	return today, tomorrow
}

func TestPaginateSingleScreen(t *testing.T) {
	p := Paginate(makeItems("t", 3), makeItems("n", 4), 7)

	assert.False(t, p.NeedsPagination)
	assert.Equal(t, 1, p.TotalScreens)
	assert.Len(t, p.Screens, 1)
	assert.Len(t, p.Screens[0].TodayReminders, 3)
	assert.Len(t, p.Screens[0].TomorrowReminders, 4)
}

func TestPaginateBoundary(t *testing.T) {
	// T=7, U=3, C=7: ровно два экрана, второй — только завтрашние.
	p := Paginate(makeItems("t", 7), makeItems("n", 3), 7)

	assert.True(t, p.NeedsPagination)
	assert.Equal(t, 2, p.TotalScreens)
	assert.Len(t, p.Screens[0].TodayReminders, 7)
	assert.Empty(t, p.Screens[0].TomorrowReminders)
	assert.Empty(t, p.Screens[1].TodayReminders)
	assert.Len(t, p.Screens[1].TomorrowReminders, 3)
}

func TestPaginateMixedFill(t *testing.T) {
	// T=5, U=5, C=7: первый экран 5+2, второй 0+3.
	p := Paginate(makeItems("t", 5), makeItems("n", 5), 7)

	assert.True(t, p.NeedsPagination)
	assert.Equal(t, 2, p.TotalScreens)
	assert.Len(t, p.Screens[0].TodayReminders, 5)
	assert.Len(t, p.Screens[0].TomorrowReminders, 2)
	assert.Empty(t, p.Screens[1].TodayReminders)
	assert.Len(t, p.Screens[1].TomorrowReminders, 3)

	tomorrow := p.Screens[0].TomorrowReminders
	assert.Equal(t, "n_0", tomorrow[0].ID)
	assert.Equal(t, "n_1", tomorrow[1].ID)
	assert.Equal(t, "n_2", p.Screens[1].TomorrowReminders[0].ID)
}

func TestPaginateCoverageAndOrder(t *testing.T) {
	capacity := 7
	for tc := 0; tc <= 20; tc++ {
		for uc := 0; uc <= 20; uc++ {
			todayIn := makeItems("t", tc)
			tomorrowIn := makeItems("n", uc)

			p := Paginate(todayIn, tomorrowIn, capacity)

			assert.Equal(t, tc+uc <= capacity, !p.NeedsPagination, "T=%d U=%d", tc, uc)
			assert.Equal(t, len(p.Screens), p.TotalScreens)

			for i, s := range p.Screens {
				assert.LessOrEqual(t, len(s.TodayReminders)+len(s.TomorrowReminders), capacity,
					"экран %d переполнен при T=%d U=%d", i, tc, uc)
			}

			// Каждый элемент ровно на одном экране, порядок исходный.
			gotToday, gotTomorrow := flatten(p)
			if tc == 0 {
				assert.Empty(t, gotToday)
			} else {
				assert.Equal(t, todayIn, gotToday, "T=%d U=%d", tc, uc)
			}
			if uc == 0 {
				assert.Empty(t, gotTomorrow)
			} else {
				assert.Equal(t, tomorrowIn, gotTomorrow, "T=%d U=%d", tc, uc)
			}
		}
	}
}

func TestPaginateDefaultCapacity(t *testing.T) {
	// Некорректная ёмкость заменяется значением по умолчанию.
	p := Paginate(makeItems("t", 7), nil, 0)
	assert.False(t, p.NeedsPagination)
	assert.Equal(t, 1, p.TotalScreens)
}
