package dataset

// Config holds the locations of the two persisted datasets.
type Config struct {
	// PrimaryPath is the location of the primary record set.
	PrimaryPath string `mapstructure:"primary_path" default:"./credit_scores.csv"`
	// SecondaryPath is the location of the secondary record set.
	SecondaryPath string `mapstructure:"secondary_path" default:"./account_status.csv"`
}
