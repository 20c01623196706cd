package segy

import (
	"sort"
	"strconv"
)

// Trace-header field codes. A code is the field's 1-based byte offset
// within the 240-byte trace header, which is how SEG-Y tooling has
// addressed header fields since the 1975 standard. The names follow the
// customary spellings so they line up with what operators see in other
// seismic software.
const (
	TraceSequenceLine    = 1
	TraceSequenceFile    = 5
	FieldRecord          = 9
	TraceNumber          = 13
	EnergySourcePoint    = 17
	CDP                  = 21
	CDPTrace             = 25
	TraceIdentification  = 29
	SummedTraces         = 31
	StackedTraces        = 33
	DataUse              = 35
	SourceReceiverOffset = 37
	ReceiverElevation    = 41
	SourceSurfaceElev    = 45
	SourceDepth          = 49
	ReceiverDatumElev    = 53
	SourceDatumElev      = 57
	SourceWaterDepth     = 61
	GroupWaterDepth      = 65
	ElevationScalar      = 69
	SourceGroupScalar    = 71
	SourceX              = 73
	SourceY              = 77
	GroupX               = 81
	GroupY               = 85
	CoordinateUnits      = 89
	WeatheringVelocity   = 91
	SubWeatheringVel     = 93
	SourceUpholeTime     = 95
	GroupUpholeTime      = 97
	SourceStatic         = 99
	GroupStatic          = 101
	TotalStatic          = 103
	LagTimeA             = 105
	LagTimeB             = 107
	DelayRecordingTime   = 109
	MuteTimeStart        = 111
	MuteTimeEnd          = 113
	TraceSampleCount     = 115
	TraceSampleInterval  = 117
	GainType             = 119
	InstrumentGain       = 121
	InstrumentInitGain   = 123
	Correlated           = 125
	SweepFrequencyStart  = 127
	SweepFrequencyEnd    = 129
	SweepLength          = 131
	SweepType            = 133
	SweepTaperStart      = 135
	SweepTaperEnd        = 137
	TaperType            = 139
	AliasFilterFreq      = 141
	AliasFilterSlope     = 143
	NotchFilterFreq      = 145
	NotchFilterSlope     = 147
	LowCutFrequency      = 149
	HighCutFrequency     = 151
	LowCutSlope          = 153
	HighCutSlope         = 155
	YearRecorded         = 157
	DayOfYear            = 159
	HourOfDay            = 161
	MinuteOfHour         = 163
	SecondOfMinute       = 165
	TimeBaseCode         = 167
	TraceWeighting       = 169
	GeophoneRoll1        = 171
	GeophoneFirstTrace   = 173
	GeophoneLastTrace    = 175
	GapSize              = 177
	OverTravel           = 179
	CDPX                 = 181
	CDPY                 = 185
	Inline3D             = 189
	Crossline3D          = 193
	ShotPoint            = 197
	ShotPointScalar      = 201
	MeasurementUnit      = 203
	TransductionMantissa = 205
	TransductionExponent = 209
	TransductionUnit     = 211
	TraceIdentifier      = 213
	TraceHeaderScalar    = 215
	SourceType           = 217
	SourceEnergyMantissa = 219
	SourceEnergyExponent = 223
	SourceMeasMantissa   = 225
	SourceMeasExponent   = 229
	SourceMeasUnit       = 231
	UnassignedInt1       = 233
	UnassignedInt2       = 237
)

// Default field assignments used when the operator has not picked anything.
// These match standard SEG-Y trace-header semantics for 2D lines.
const (
	DefaultXField      = SourceX
	DefaultYField      = SourceY
	DefaultCDPField    = CDP
	DefaultScalarField = SourceGroupScalar
)

// Field describes one addressable trace-header field.
type Field struct {
	Code int    // 1-based byte offset within the trace header
	Name string // Canonical field name
	Size int    // Field width in bytes (2 or 4)
}

// fieldTable is the ordered catalog of standard trace-header fields.
// Widths are implied by the gap to the next field, filled in by init.
var fieldTable = []Field{
	{Code: TraceSequenceLine, Name: "TraceSequenceLine"},
	{Code: TraceSequenceFile, Name: "TraceSequenceFile"},
	{Code: FieldRecord, Name: "FieldRecord"},
	{Code: TraceNumber, Name: "TraceNumber"},
	{Code: EnergySourcePoint, Name: "EnergySourcePoint"},
	{Code: CDP, Name: "CDP"},
	{Code: CDPTrace, Name: "CDP_TRACE"},
	{Code: TraceIdentification, Name: "TraceIdentificationCode"},
	{Code: SummedTraces, Name: "NSummedTraces"},
	{Code: StackedTraces, Name: "NStackedTraces"},
	{Code: DataUse, Name: "DataUse"},
	{Code: SourceReceiverOffset, Name: "Offset"},
	{Code: ReceiverElevation, Name: "ReceiverGroupElevation"},
	{Code: SourceSurfaceElev, Name: "SourceSurfaceElevation"},
	{Code: SourceDepth, Name: "SourceDepth"},
	{Code: ReceiverDatumElev, Name: "ReceiverDatumElevation"},
	{Code: SourceDatumElev, Name: "SourceDatumElevation"},
	{Code: SourceWaterDepth, Name: "SourceWaterDepth"},
	{Code: GroupWaterDepth, Name: "GroupWaterDepth"},
	{Code: ElevationScalar, Name: "ElevationScalar"},
	{Code: SourceGroupScalar, Name: "SourceGroupScalar"},
	{Code: SourceX, Name: "SourceX"},
	{Code: SourceY, Name: "SourceY"},
	{Code: GroupX, Name: "GroupX"},
	{Code: GroupY, Name: "GroupY"},
	{Code: CoordinateUnits, Name: "CoordinateUnits"},
	{Code: WeatheringVelocity, Name: "WeatheringVelocity"},
	{Code: SubWeatheringVel, Name: "SubWeatheringVelocity"},
	{Code: SourceUpholeTime, Name: "SourceUpholeTime"},
	{Code: GroupUpholeTime, Name: "GroupUpholeTime"},
	{Code: SourceStatic, Name: "SourceStaticCorrection"},
	{Code: GroupStatic, Name: "GroupStaticCorrection"},
	{Code: TotalStatic, Name: "TotalStaticApplied"},
	{Code: LagTimeA, Name: "LagTimeA"},
	{Code: LagTimeB, Name: "LagTimeB"},
	{Code: DelayRecordingTime, Name: "DelayRecordingTime"},
	{Code: MuteTimeStart, Name: "MuteTimeStart"},
	{Code: MuteTimeEnd, Name: "MuteTimeEnd"},
	{Code: TraceSampleCount, Name: "TRACE_SAMPLE_COUNT"},
	{Code: TraceSampleInterval, Name: "TRACE_SAMPLE_INTERVAL"},
	{Code: GainType, Name: "GainType"},
	{Code: InstrumentGain, Name: "InstrumentGainConstant"},
	{Code: InstrumentInitGain, Name: "InstrumentInitialGain"},
	{Code: Correlated, Name: "Correlated"},
	{Code: SweepFrequencyStart, Name: "SweepFrequencyStart"},
	{Code: SweepFrequencyEnd, Name: "SweepFrequencyEnd"},
	{Code: SweepLength, Name: "SweepLength"},
	{Code: SweepType, Name: "SweepType"},
	{Code: SweepTaperStart, Name: "SweepTraceTaperLengthStart"},
	{Code: SweepTaperEnd, Name: "SweepTraceTaperLengthEnd"},
	{Code: TaperType, Name: "TaperType"},
	{Code: AliasFilterFreq, Name: "AliasFilterFrequency"},
	{Code: AliasFilterSlope, Name: "AliasFilterSlope"},
	{Code: NotchFilterFreq, Name: "NotchFilterFrequency"},
	{Code: NotchFilterSlope, Name: "NotchFilterSlope"},
	{Code: LowCutFrequency, Name: "LowCutFrequency"},
	{Code: HighCutFrequency, Name: "HighCutFrequency"},
	{Code: LowCutSlope, Name: "LowCutSlope"},
	{Code: HighCutSlope, Name: "HighCutSlope"},
	{Code: YearRecorded, Name: "YearDataRecorded"},
	{Code: DayOfYear, Name: "DayOfYear"},
	{Code: HourOfDay, Name: "HourOfDay"},
	{Code: MinuteOfHour, Name: "MinuteOfHour"},
	{Code: SecondOfMinute, Name: "SecondOfMinute"},
	{Code: TimeBaseCode, Name: "TimeBaseCode"},
	{Code: TraceWeighting, Name: "TraceWeightingFactor"},
	{Code: GeophoneRoll1, Name: "GeophoneGroupNumberRoll1"},
	{Code: GeophoneFirstTrace, Name: "GeophoneGroupNumberFirstTraceOrigField"},
	{Code: GeophoneLastTrace, Name: "GeophoneGroupNumberLastTraceOrigField"},
	{Code: GapSize, Name: "GapSize"},
	{Code: OverTravel, Name: "OverTravel"},
	{Code: CDPX, Name: "CDP_X"},
	{Code: CDPY, Name: "CDP_Y"},
	{Code: Inline3D, Name: "INLINE_3D"},
	{Code: Crossline3D, Name: "CROSSLINE_3D"},
	{Code: ShotPoint, Name: "ShotPoint"},
	{Code: ShotPointScalar, Name: "ShotPointScalar"},
	{Code: MeasurementUnit, Name: "TraceValueMeasurementUnit"},
	{Code: TransductionMantissa, Name: "TransductionConstantMantissa"},
	{Code: TransductionExponent, Name: "TransductionConstantPower"},
	{Code: TransductionUnit, Name: "TransductionUnit"},
	{Code: TraceIdentifier, Name: "TraceIdentifier"},
	{Code: TraceHeaderScalar, Name: "ScalarTraceHeader"},
	{Code: SourceType, Name: "SourceType"},
	{Code: SourceEnergyMantissa, Name: "SourceEnergyDirectionMantissa"},
	{Code: SourceEnergyExponent, Name: "SourceEnergyDirectionExponent"},
	{Code: SourceMeasMantissa, Name: "SourceMeasurementMantissa"},
	{Code: SourceMeasExponent, Name: "SourceMeasurementExponent"},
	{Code: SourceMeasUnit, Name: "SourceMeasurementUnit"},
	{Code: UnassignedInt1, Name: "UnassignedInt1"},
	{Code: UnassignedInt2, Name: "UnassignedInt2"},
}

// fieldsByCode is the lookup chain built once at init: first match wins,
// unknown codes fall back to the numeric code formatted as a string.
var fieldsByCode map[int]Field

func init() {
	// A field's width is the distance to the next field; the header is
	// exactly 240 bytes so the last field runs to the end.
	fieldsByCode = make(map[int]Field, len(fieldTable))
	for i := range fieldTable {
		end := TraceHeaderSize + 1
		if i+1 < len(fieldTable) {
			end = fieldTable[i+1].Code
		}
		fieldTable[i].Size = end - fieldTable[i].Code
		fieldsByCode[fieldTable[i].Code] = fieldTable[i]
	}
}

// FieldName resolves a trace-header field code to its canonical name.
// Unknown codes are returned as their decimal string so callers always get
// something displayable.
func FieldName(code int) string {
	if f, ok := fieldsByCode[code]; ok {
		return f.Name
	}
	return strconv.Itoa(code)
}

// LookupField returns the catalog entry for a field code.
func LookupField(code int) (Field, bool) {
	f, ok := fieldsByCode[code]
	return f, ok
}

// AvailableFields returns the full catalog sorted by byte offset, for
// populating field-selection interfaces.
func AvailableFields() []Field {
	out := make([]Field, len(fieldTable))
	copy(out, fieldTable)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
