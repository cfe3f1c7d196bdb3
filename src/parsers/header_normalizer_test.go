package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"settlement date", "Ngày đối soát", "ngay_doi_soat"},
		{"status", "Trạng thái", "trang_thai"},
		{"revenue", "Doanh thu", "doanh_thu"},
		{"store name", "Tên cửa hàng", "ten_cua_hang"},
		{"city with punctuation", "Tỉnh/Thành phố người nhận", "tinhthanh_pho_nguoi_nhan"},
		{"delivered date", "Ngày giao thành công", "ngay_giao_thanh_cong"},
		{"capital dj", "Đơn vị vận chuyển", "don_vi_van_chuyen"},
		{"already canonical", "ngay_doi_soat", "ngay_doi_soat"},
		{"surrounding whitespace", "  Doanh   thu  ", "doanh_thu"},
		{"tabs and newlines collapse", "Doanh\tthu\n", "doanh_thu"},
		{"digits survive", "Cột 2", "cot_2"},
		{"punctuation only", "!!!", ""},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeHeader(tc.in))
		})
	}
}

func TestNormalizeHeaderIdempotent(t *testing.T) {
	inputs := []string{
		"Ngày đối soát",
		"Tỉnh/Thành phố người nhận",
		"Nhân viên kinh doanh",
		"Cột 2",
		"",
		"already_normalized_key",
	}
	for _, in := range inputs {
		once := NormalizeHeader(in)
		assert.Equal(t, once, NormalizeHeader(once), "normalizing %q twice diverged", in)
	}
}
