package quotation

import "time"

// Template returns the seed document a new quotation starts from. Content
// matches the editor's default sheet; identities are generated per call.
func Template() Document {
	doc := Document{
		Language: LanguageVI,
		Company: CompanyInfo{
			Name:    "CÔNG TY CỔ PHẦN SOGA",
			Address: "Tầng 4, 245 Lê Thánh Tôn, Phường Bến Thành, TP.HCM",
			Phone:   "028.77759.888",
			Email:   "info@soga.com.vn",
			TaxID:   "0312592175",
			LogoURL: "https://vuottroi.vn/public/images/logo-new.png",
		},
		Customer: CustomerInfo{
			CompanyName:   "CÔNG TY TNHH ADVENTURE OCEAN",
			ContactPerson: "Chị Vi",
			ProjectName:   "Xây dựng hệ thống vận hành & Thương hiệu số",
		},
		Meta: MetaInfo{
			QuoteNumber:  "BG-2024-AO01",
			Date:         time.Now().Format("02/01/2006"),
			ValidityDays: 15,
		},
		VATRate: 8,
		Terms: Terms{
			Payment: "Đợt 1: Thanh toán 50% ngay sau khi ký hợp đồng.\nĐợt 2: Thanh toán 50% còn lại sau khi nghiệm thu.\nHình thức: Chuyển khoản ngân hàng.",
			Notes:   "Báo giá trên mang tính chất tham khảo, chi phí chính xác có thể thay đổi tùy thuộc vào yêu cầu chi tiết chức năng website và số lượng user thực tế cho Email/Tổng đài.\nPhí tên miền và Hosting gia hạn hàng năm.",
		},
		Sections: []Section{
			{
				ID:    NewID(),
				Title: "BỘ NHẬN DIỆN THƯƠNG HIỆU ĐẦY ĐỦ",
				Items: []LineItem{
					{
						ID:          NewID(),
						Name:        "Thiết kế gói Branding Pro",
						Description: "Danh thiếp, Tiêu đề thư, Phong bì, Thư mời\nHóa đơn, Phiếu thu – chi, Thẻ nhân viên\nChữ ký email, Background họp online\nĐồng phục nhân viên, Thẻ ra vào\nSocial media template, Slide thuyết trình (PPT)",
						Unit:        "Gói",
						Quantity:    1,
						Price:       15000000,
					},
				},
			},
			{
				ID:    NewID(),
				Title: "WEBSITE & HẠ TẦNG (adventureocean.vn)",
				Items: []LineItem{
					{
						ID:          NewID(),
						Name:        "Đăng ký tên miền .VN",
						Description: "adventureocean.vn (1 năm)",
						Unit:        "Năm",
						Quantity:    1,
						Price:       750000,
					},
					{
						ID:          NewID(),
						Name:        "Hosting Doanh Nghiệp (High Speed)",
						Description: "SSD 10GB, Băng thông không giới hạn, SSL miễn phí",
						Unit:        "Năm",
						Quantity:    1,
						Price:       2400000,
					},
					{
						ID:          NewID(),
						Name:        "Thiết kế & Lập trình Website",
						Description: "Giao diện UX/UI hiện đại, chuẩn SEO, Mobile Responsive, CMS quản trị.",
						Unit:        "Dự án",
						Quantity:    1,
						Price:       18000000,
					},
				},
			},
			{
				ID:    NewID(),
				Title: "HỆ THỐNG EMAIL & TỔNG ĐÀI",
				Items: []LineItem{
					{
						ID:          NewID(),
						Name:        "Google Workspace (Business Starter)",
						Description: "Email theo tên miền, Drive 30GB, Meet (Đơn giá/User/Năm)",
						Unit:        "User/Năm",
						Quantity:    5,
						Price:       1600000,
					},
					{
						ID:          NewID(),
						Name:        "Thiết lập hệ thống Tổng đài ảo (Cloud PBX)",
						Description: "Khởi tạo đầu số cố định/hotline, kịch bản lời chào, ghi âm cuộc gọi.",
						Unit:        "Gói",
						Quantity:    1,
						Price:       1500000,
					},
				},
			},
			{
				ID:    NewID(),
				Title: "MARKETING KHỞI TẠO",
				Items: []LineItem{
					{
						ID:          NewID(),
						Name:        "Xây dựng hệ thống Marketing nền tảng",
						Description: "Xác thực Google Maps doanh nghiệp.\nThiết lập Fanpage Facebook chuẩn SEO (Ảnh bìa, Avatar, Info).\nThiết lập kênh Youtube, Linkedin profile doanh nghiệp.",
						Unit:        "Gói",
						Quantity:    1,
						Price:       5000000,
					},
				},
			},
		},
	}
	doc.Sections = Resequence(doc.Sections)
	return doc
}
