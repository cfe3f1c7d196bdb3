package models

// FieldClass is the type class a canonical field belongs to. It decides
// how raw cell values are coerced and how the field is rendered on export.
type FieldClass int

const (
	FieldText FieldClass = iota
	FieldDate
	FieldCurrency
)

func (c FieldClass) String() string {
	switch c {
	case FieldDate:
		return "date"
	case FieldCurrency:
		return "currency"
	default:
		return "text"
	}
}

// Canonical field keys the engine specifically recognizes. Every other
// normalized header is treated as a plain text field.
const (
	FieldSettlementDate  = "ngay_doi_soat"
	FieldStatus          = "trang_thai"
	FieldRevenue         = "doanh_thu"
	FieldShippingFee     = "phi_van_chuyen"
	FieldStoreName       = "ten_cua_hang"
	FieldCity            = "tinhthanh_pho_nguoi_nhan"
	FieldSalesRep        = "nhan_vien_kinh_doanh"
	FieldDeliveredDate   = "ngay_giao_thanh_cong"
	FieldCreatedAt       = "thoi_gian_tao"
	FieldPickupTime      = "thoi_gian_lay_hang"
	FieldPaymentConfirm  = "ngay_xac_nhan_thu_tien"
	FieldCollected       = "thu_ho"
	FieldCollectedOrig   = "thu_ho_ban_dau"
	FieldDeclaredValue   = "tri_gia"
	FieldPartnerFee      = "phi_doi_tac_thu"
	FieldCustomerWeight  = "khoi_luong_khach_hang"
	FieldRegionGroup     = "nhom_vung_mien"
	FieldCarrier         = "don_vi_van_chuyen"
	FieldOrderSource     = "nguon_len_don"
)

// FieldSpec describes how one canonical field is handled everywhere:
// coercion, aggregation and export all consult this single table so the
// per-class field lists cannot drift apart.
type FieldSpec struct {
	Class FieldClass
	// WithTime marks date fields whose rendering keeps the time-of-day
	// component (dd/MM/yyyy HH:mm:ss instead of dd/MM/yyyy).
	WithTime bool
}

var fieldTable = map[string]FieldSpec{
	FieldSettlementDate: {Class: FieldDate},
	FieldCreatedAt:      {Class: FieldDate, WithTime: true},
	FieldPickupTime:     {Class: FieldDate, WithTime: true},
	FieldPaymentConfirm: {Class: FieldDate, WithTime: true},
	FieldDeliveredDate:  {Class: FieldDate, WithTime: true},

	FieldCollected:      {Class: FieldCurrency},
	FieldCollectedOrig:  {Class: FieldCurrency},
	FieldDeclaredValue:  {Class: FieldCurrency},
	FieldShippingFee:    {Class: FieldCurrency},
	FieldPartnerFee:     {Class: FieldCurrency},
	FieldRevenue:        {Class: FieldCurrency},
	FieldCustomerWeight: {Class: FieldCurrency},

	FieldStatus:      {Class: FieldText},
	FieldStoreName:   {Class: FieldText},
	FieldCity:        {Class: FieldText},
	FieldSalesRep:    {Class: FieldText},
	FieldRegionGroup: {Class: FieldText},
	FieldCarrier:     {Class: FieldText},
	FieldOrderSource: {Class: FieldText},
}

// SpecOf returns the field spec for a canonical key. Unknown keys are
// plain text fields.
func SpecOf(key string) FieldSpec {
	if spec, ok := fieldTable[key]; ok {
		return spec
	}
	return FieldSpec{Class: FieldText}
}

// ClassOf returns the type class for a canonical key.
func ClassOf(key string) FieldClass {
	return SpecOf(key).Class
}

// ExpectedFields lists the canonical keys the statistics engine keys off.
// A sheet missing some of these still ingests; the affected statistics
// just read as zero/empty.
func ExpectedFields() []string {
	return []string{
		FieldSettlementDate, FieldStatus, FieldRevenue, FieldShippingFee,
		FieldStoreName, FieldCity, FieldSalesRep, FieldDeliveredDate,
		FieldCreatedAt,
	}
}
