package tz

import "time"

// Tokyo is the Asia/Tokyo location, used to timestamp export summaries.
var Tokyo *time.Location

func init() {
	var err error
	Tokyo, err = time.LoadLocation("Asia/Tokyo")
	if err != nil {
		// Japan has no DST, a fixed zone is equivalent when tzdata is missing.
		Tokyo = time.FixedZone("JST", 9*60*60)
	}
}
