package synth

import (
	"strconv"

	"record-manager/core/dataset"

	"github.com/brianvoe/gofakeit/v7"
)

// Account statuses emitted for secondary records.
var Statuses = []string{"good-standing", "delinquent", "closed"}

// Credit score bounds for primary records.
const (
	MinScore = 300
	MaxScore = 850
)

// Generator produces linked record pairs with plausible field values.
type Generator struct {
	faker *gofakeit.Faker
}

// New creates a generator. A non-zero seed makes the output deterministic.
func New(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Pair produces one primary and one secondary record for the given
// identifier. The shared fields (name, email) are generated once and copied
// verbatim into both records so the pair can never diverge.
func (g *Generator) Pair(id int) (dataset.Record, dataset.Record) {
	idVal := strconv.Itoa(id)
	name := g.faker.Name()
	email := g.faker.Email()

	primary := dataset.Record{
		ID: id,
		Fields: map[string]string{
			"id":           idVal,
			"name":         name,
			"email":        email,
			"credit_score": strconv.Itoa(g.faker.Number(MinScore, MaxScore)),
		},
	}
	secondary := dataset.Record{
		ID: id,
		Fields: map[string]string{
			"id":             idVal,
			"name":           name,
			"email":          email,
			"account_status": g.faker.RandomString(Statuses),
		},
	}
	return primary, secondary
}

// Batch produces linked pairs for every allocated identifier, in order.
func (g *Generator) Batch(ids []int) (primary, secondary []dataset.Record) {
	primary = make([]dataset.Record, 0, len(ids))
	secondary = make([]dataset.Record, 0, len(ids))
	for _, id := range ids {
		p, s := g.Pair(id)
		primary = append(primary, p)
		secondary = append(secondary, s)
	}
	return primary, secondary
}
