package gamedomain

import (
	"fmt"
	"math"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/config"
)

// sumEpsilon absorbs float noise from adding one-decimal points.
const sumEpsilon = 1e-9

// PointSum returns the exact total of the four points. A balanced table is 0.
func PointSum(entries []Entry) float64 {
	sum := 0.0
	for _, e := range entries {
		sum += e.Point
	}
	return sum
}

// CheckPointSum applies the configured policy to the exact sum. It reports
// whether the sum is outside tolerance; only the reject policy turns that into
// an error. The returned imbalance is rounded to one decimal for reporting.
func CheckPointSum(entries []Entry, policy string, tolerance float64) (imbalance float64, unbalanced bool, err error) {
	sum := PointSum(entries)
	imbalance = Round1(sum)
	unbalanced = math.Abs(sum) > tolerance+sumEpsilon
	if unbalanced && policy == config.PointSumReject {
		return imbalance, true, apperrors.Validation("point", fmt.Sprintf("points must sum to zero (off by %.2f)", sum))
	}
	return imbalance, unbalanced, nil
}
