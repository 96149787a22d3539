package go_jetfuelburn

import (
	"fmt"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

//PayloadRangeDiagram is the payload/range diagram of an aircraft
//
//	payload
//	   |  B________C
//	   |  |        \_
//	   |  |           \__
//	   |  |               \
//	   +--A----------------D-- range
//
//Between A and B the payload is limited by the structure (maximum payload),
//between B and C payload is traded for fuel at the maximum takeoff mass
//and between C and D the fuel tanks are full and the payload falls to zero.
type PayloadRangeDiagram struct {
	oew      unit.Quantity
	mtow     unit.Quantity
	rangeA   unit.Quantity
	payloadB unit.Quantity
	rangeB   unit.Quantity
	payloadC unit.Quantity
	rangeC   unit.Quantity
	rangeD   unit.Quantity
}

//CreatePayloadRangeDiagram creates a diagram from its breakpoints.
//
//The ranges must be strictly increasing, starting from a non-negative
//range A. The payload at B must not be smaller than the payload at C and the
//maximum takeoff mass must exceed the empty mass plus the payload at B.
func CreatePayloadRangeDiagram(oew, mtow, rangeA, payloadB, rangeB, payloadC, rangeC, rangeD unit.Quantity) (PayloadRangeDiagram, error) {
	err := unit.Require(
		unit.Expect("oew", oew, unit.Mass),
		unit.Expect("mtow", mtow, unit.Mass),
		unit.Expect("range_A", rangeA, unit.Length),
		unit.Expect("payload_B", payloadB, unit.Mass),
		unit.Expect("range_B", rangeB, unit.Length),
		unit.Expect("payload_C", payloadC, unit.Mass),
		unit.Expect("range_C", rangeC, unit.Length),
		unit.Expect("range_D", rangeD, unit.Length))
	if err != nil {
		return PayloadRangeDiagram{}, err
	}

	const function = "PayloadRangeDiagram"
	switch {
	case oew.Sign() <= 0:
		return PayloadRangeDiagram{}, domainError(function, "oew", "must be positive, got %s", oew)
	case rangeA.Sign() < 0:
		return PayloadRangeDiagram{}, domainError(function, "range_A", "must not be negative, got %s", rangeA)
	case rangeB.SI() <= rangeA.SI():
		return PayloadRangeDiagram{}, domainError(function, "range_B", "must be greater than range A %s, got %s", rangeA, rangeB)
	case rangeC.SI() <= rangeB.SI():
		return PayloadRangeDiagram{}, domainError(function, "range_C", "must be greater than range B %s, got %s", rangeB, rangeC)
	case rangeD.SI() <= rangeC.SI():
		return PayloadRangeDiagram{}, domainError(function, "range_D", "must be greater than range C %s, got %s", rangeC, rangeD)
	case payloadC.Sign() < 0:
		return PayloadRangeDiagram{}, domainError(function, "payload_C", "must not be negative, got %s", payloadC)
	case payloadB.SI() < payloadC.SI():
		return PayloadRangeDiagram{}, domainError(function, "payload_B", "must not be smaller than payload C %s, got %s", payloadC, payloadB)
	case mtow.SI() <= oew.SI()+payloadB.SI():
		return PayloadRangeDiagram{}, domainError(function, "mtow", "must exceed oew plus payload B, got %s", mtow)
	}

	return PayloadRangeDiagram{
		oew:      oew,
		mtow:     mtow,
		rangeA:   rangeA,
		payloadB: payloadB,
		rangeB:   rangeB,
		payloadC: payloadC,
		rangeC:   rangeC,
		rangeD:   rangeD,
	}, nil
}

//OEW returns the operating empty weight (mass)
func (p PayloadRangeDiagram) OEW() unit.Quantity {
	return p.oew
}

//MTOW returns the maximum takeoff weight (mass)
func (p PayloadRangeDiagram) MTOW() unit.Quantity {
	return p.mtow
}

//MaximumRange returns the range with zero payload and full tanks (point D)
func (p PayloadRangeDiagram) MaximumRange() unit.Quantity {
	return p.rangeD
}

//At returns the fuel mass and the payload mass for the distance d, both in kilograms.
//
//A distance before point A or beyond point D is outside of the envelope
//and is reported as a DomainError. The values are never clamped.
func (p PayloadRangeDiagram) At(d unit.Quantity) (fuel unit.Quantity, payload unit.Quantity, err error) {
	if err = d.Check("d", unit.Length); err != nil {
		return
	}
	x := d.SI()
	if x < 0 {
		err = domainError("PayloadRange", "d", "must not be negative, got %s", d)
		return
	}
	if x < p.rangeA.SI() || x > p.rangeD.SI() {
		err = domainError("PayloadRange", "d", "%s is outside of the envelope %s to %s", d, p.rangeA, p.rangeD)
		return
	}

	oew, mtow := p.oew.SI(), p.mtow.SI()
	pb, pc := p.payloadB.SI(), p.payloadC.SI()
	a, b, c, dd := p.rangeA.SI(), p.rangeB.SI(), p.rangeC.SI(), p.rangeD.SI()

	var f, pl float64
	switch {
	case x <= b:
		pl = pb
		f = bmath.Lerp((x-a)/(b-a), 0, mtow-oew-pb)
	case x <= c:
		pl = bmath.Lerp((x-b)/(c-b), pb, pc)
		f = mtow - oew - pl
	default:
		pl = bmath.Lerp((x-c)/(dd-c), pc, 0)
		f = mtow - oew - pc
	}
	fuel = unit.MustCreate(f, unit.MassKilogram)
	payload = unit.MustCreate(pl, unit.MassKilogram)
	return
}

func (p PayloadRangeDiagram) String() string {
	return fmt.Sprintf("OEW:%s,MTOW:%s,A:%s,B:%s/%s,C:%s/%s,D:%s",
		p.oew, p.mtow, p.rangeA, p.rangeB, p.payloadB, p.rangeC, p.payloadC, p.rangeD)
}

//PayloadRange returns the fuel mass and the payload mass for the distance d
//on the payload/range diagram defined by the breakpoints
func PayloadRange(d, oew, mtow, rangeA, payloadB, rangeB, payloadC, rangeC, rangeD unit.Quantity) (unit.Quantity, unit.Quantity, error) {
	if err := d.Check("d", unit.Length); err != nil {
		return unit.Quantity{}, unit.Quantity{}, err
	}
	diagram, err := CreatePayloadRangeDiagram(oew, mtow, rangeA, payloadB, rangeB, payloadC, rangeC, rangeD)
	if err != nil {
		return unit.Quantity{}, unit.Quantity{}, err
	}
	return diagram.At(d)
}
