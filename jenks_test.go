package geoplot

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestFisherJenks(t *testing.T) {
	values := []float64{1.0, 2.0, 3.0, 4.0, 5.0, 10.0, 11.0, 12.0, 13.0, 14.0}
	breaks, err := FisherJenks(values, 2)
	test.Error(t, err)
	test.T(t, breaks, []float64{5.0, 14.0})

	breaks, err = FisherJenks(values, 1)
	test.Error(t, err)
	test.T(t, breaks, []float64{14.0})

	// unsorted input gives the same classification
	breaks, err = FisherJenks([]float64{14.0, 1.0, 11.0, 3.0, 5.0, 12.0, 2.0, 13.0, 4.0, 10.0}, 2)
	test.Error(t, err)
	test.T(t, breaks, []float64{5.0, 14.0})
}

func TestFisherJenksClamp(t *testing.T) {
	// more classes than distinct values reduces the class count
	breaks, err := FisherJenks([]float64{1.0, 1.0, 2.0}, 5)
	test.Error(t, err)
	test.T(t, breaks, []float64{1.0, 2.0})
}

func TestFisherJenksErrors(t *testing.T) {
	_, err := FisherJenks(nil, 2)
	test.That(t, err != nil)
	_, err = FisherJenks([]float64{1.0}, 0)
	test.That(t, err != nil)
}

func TestFisherJenksOrdered(t *testing.T) {
	values := []float64{0.5, 8.0, 2.0, 2.5, 30.0, 27.0, 3.0, 9.5, 1.0, 26.0}
	breaks, err := FisherJenks(values, 3)
	test.Error(t, err)
	test.T(t, len(breaks), 3)
	test.That(t, breaks[0] < breaks[1] && breaks[1] < breaks[2])
	test.Float(t, breaks[2], 30.0)
}

func TestClassIndex(t *testing.T) {
	breaks := []float64{5.0, 14.0}
	test.T(t, classIndex(3.0, breaks), 0)
	test.T(t, classIndex(5.0, breaks), 0)
	test.T(t, classIndex(6.0, breaks), 1)
	test.T(t, classIndex(99.0, breaks), 1)
}
