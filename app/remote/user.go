package remote

import "github.com/danghq/shopdesk/app/models"

// UserRecord is an account as the API returns it. MatKhau arrives hashed
// and is never copied onto the model.
type UserRecord struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	MatKhau   string `json:"mat_khau"`
	HoTen     string `json:"ho_ten"`
	DiaChi    string `json:"dia_chi"`
	DienThoai string `json:"dien_thoai"`
	VaiTro    int    `json:"vai_tro"`
	Khoa      int    `json:"khoa"`
	Hinh      string `json:"hinh"`
}

// UserRequest is the payload sent on create and update. MatKhau must be
// hashed by the caller before it reaches the wire; leave it empty on
// update to keep the stored hash.
type UserRequest struct {
	Email     string `json:"email"`
	MatKhau   string `json:"mat_khau,omitempty"`
	HoTen     string `json:"ho_ten"`
	DiaChi    string `json:"dia_chi"`
	DienThoai string `json:"dien_thoai"`
	VaiTro    int    `json:"vai_tro"`
	Khoa      int    `json:"khoa"`
	Hinh      string `json:"hinh"`
}

// ToUser maps a wire record to the canonical model.
func ToUser(r UserRecord) models.User {
	return models.User{
		ID:      r.ID,
		Email:   r.Email,
		Name:    r.HoTen,
		Address: r.DiaChi,
		Phone:   r.DienThoai,
		Role:    r.VaiTro,
		Locked:  r.Khoa == 1,
		Avatar:  r.Hinh,
	}
}

// UserPayload maps a model back to the request shape. hashed is the
// already-hashed password, or "" to leave the password untouched.
func UserPayload(u models.User, hashed string) UserRequest {
	req := UserRequest{
		Email:     u.Email,
		MatKhau:   hashed,
		HoTen:     u.Name,
		DiaChi:    u.Address,
		DienThoai: u.Phone,
		VaiTro:    u.Role,
		Hinh:      u.Avatar,
	}
	if u.Locked {
		req.Khoa = 1
	}
	return req
}
