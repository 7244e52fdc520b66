package services

import (
	"math/rand"
	"sort"
	"time"

	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// merchant is a payee used to label generated records
type merchant struct {
	Name     string
	Category string
}

type recordGenerator struct {
	merchantPool []merchant
	rng          *rand.Rand
}

const (
	purchaseHoursStart = 7
	purchaseHoursEnd   = 23
)

// NewRecordGenerator creates a generator of demo expense records
func NewRecordGenerator() RecordGeneratorInterface {
	return newRecordGenerator(time.Now().UnixNano())
}

func newRecordGenerator(seed int64) *recordGenerator {
	return &recordGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func initializeMerchantPool() []merchant {
	return []merchant{
		{"BigBasket", models.CategoryFood},
		{"Swiggy", models.CategoryFood},
		{"Zomato", models.CategoryFood},
		{"Local Kirana Store", models.CategoryFood},
		{"Cafe Coffee Day", models.CategoryFood},

		{"Uber", models.CategoryTransport},
		{"Ola", models.CategoryTransport},
		{"Metro Card Recharge", models.CategoryTransport},
		{"Indian Oil", models.CategoryTransport},

		{"Electricity Board", models.CategoryUtilities},
		{"Airtel", models.CategoryUtilities},
		{"Jio Fiber", models.CategoryUtilities},
		{"Water Department", models.CategoryUtilities},

		{"Amazon", models.CategoryShopping},
		{"Flipkart", models.CategoryShopping},
		{"Myntra", models.CategoryShopping},
		{"Decathlon", models.CategoryShopping},

		{"Netflix", models.CategoryEntertainment},
		{"Spotify", models.CategoryEntertainment},
		{"PVR Cinemas", models.CategoryEntertainment},

		{"Apollo Pharmacy", models.CategoryHealth},
		{"City Clinic", models.CategoryHealth},

		{"IndiGo", models.CategoryTravel},
		{"IRCTC", models.CategoryTravel},

		{"Udemy", models.CategoryEducation},
		{"Crossword Bookstore", models.CategoryEducation},
	}
}

func (g *recordGenerator) selectRandomMerchant() merchant {
	return g.merchantPool[g.rng.Intn(len(g.merchantPool))]
}

func (g *recordGenerator) generateAmount(category string) decimal.Decimal {
	minValue, maxValue := amountRange(category)
	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2)
}

func amountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryFood:          {40, 900},
		models.CategoryTransport:     {30, 600},
		models.CategoryUtilities:     {300, 2500},
		models.CategoryShopping:      {250, 6000},
		models.CategoryEntertainment: {150, 800},
		models.CategoryHealth:        {100, 3000},
		models.CategoryTravel:        {1500, 12000},
		models.CategoryEducation:     {400, 3500},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 50, 500
}

// generateTimestamp picks a day in [startDate, endDate) and a daytime hour on it
func (g *recordGenerator) generateTimestamp(startDate, endDate time.Time) time.Time {
	diff := endDate.Sub(startDate)
	if diff <= 0 {
		return startDate
	}
	day := startDate.Add(time.Duration(g.rng.Int63n(int64(diff))))

	hour := purchaseHoursStart + g.rng.Intn(purchaseHoursEnd-purchaseHoursStart)
	timestamp := time.Date(day.Year(), day.Month(), day.Day(), hour, g.rng.Intn(60), g.rng.Intn(60), 0, day.Location())

	if timestamp.Before(startDate) {
		return startDate
	}
	if !timestamp.Before(endDate) {
		return day
	}
	return timestamp
}

// GenerateRecords returns count records for userID dated within [startDate, endDate), oldest first
func (g *recordGenerator) GenerateRecords(userID uuid.UUID, startDate, endDate time.Time, count int) []*models.Record {
	records := make([]*models.Record, 0, count)

	for i := 0; i < count; i++ {
		m := g.selectRandomMerchant()
		records = append(records, &models.Record{
			ID:       uuid.New(),
			UserID:   userID,
			Text:     m.Name,
			Category: m.Category,
			Amount:   g.generateAmount(m.Category),
			Date:     g.generateTimestamp(startDate, endDate),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records
}
